package model

import "errors"

// Common errors used across the application
var (
	ErrSessionNotFound = errors.New("session not found")
)
