package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

// ErrBadCookie is returned when a cookie value is missing its signature or
// the signature does not verify.
var ErrBadCookie = errors.New("invalid session cookie")

// Codec signs session tokens for transport in the session cookie, so a
// client cannot fabricate or splice tokens. The wire format is
// "<token>.<base64url(hmac-sha256(token))>".
type Codec struct {
	secret []byte
}

// NewCodec creates a codec keyed by the session secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode returns the signed cookie value for a token.
func (c *Codec) Encode(token string) string {
	return token + "." + base64.RawURLEncoding.EncodeToString(c.sign(token))
}

// Decode verifies a cookie value and returns the bare token.
func (c *Codec) Decode(value string) (string, error) {
	i := strings.LastIndexByte(value, '.')
	if i < 0 {
		return "", ErrBadCookie
	}

	token := value[:i]
	sig, err := base64.RawURLEncoding.DecodeString(value[i+1:])
	if err != nil {
		return "", ErrBadCookie
	}

	if !hmac.Equal(sig, c.sign(token)) {
		return "", ErrBadCookie
	}
	return token, nil
}

func (c *Codec) sign(token string) []byte {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(token))
	return mac.Sum(nil)
}
