package panel

import "github.com/auranode/auranode/internal/model"

// Wire types for the Pterodactyl application API. Resources arrive wrapped
// in {"object": ..., "attributes": ...} envelopes; lists wrap their items
// the same way under "data".

type userResource struct {
	Object     string         `json:"object"`
	Attributes userAttributes `json:"attributes"`
}

type userAttributes struct {
	model.PanelUser
	Relationships *userRelationships `json:"relationships,omitempty"`
}

type userRelationships struct {
	Servers serverList `json:"servers"`
}

type userList struct {
	Object string         `json:"object"`
	Data   []userResource `json:"data"`
}

type serverResource struct {
	Object     string            `json:"object"`
	Attributes model.PanelServer `json:"attributes"`
}

type serverList struct {
	Object string           `json:"object"`
	Data   []serverResource `json:"data"`
}

type createUserRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

type errorResponse struct {
	Errors []apiError `json:"errors"`
}

type apiError struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}
