package authapi

import (
	"lineage/cmd/internal/auth/token"
	"lineage/cmd/internal/tree"
)

// Request schemas are statically typed per route: decodeJSON rejects unknown
// keys, and handlers enforce the per-field non-emptiness rules.

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signinRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	UserToken string `json:"userToken"`
}

type tokenManageRequest struct {
	AppName  string `json:"appName"`
	Username string `json:"username"`
	Token    string `json:"token"`
	Type     string `json:"type"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// failureResponse is the {"error":true} shape shared by not-found and
// store-failure responses. Hint is only populated for token store errors.
type failureResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

type signinResponse struct {
	LoggedIn bool   `json:"loggedIn"`
	Hash     string `json:"hash"`
	Message  string `json:"message"`
}

type tokenResultResponse struct {
	Result token.Record `json:"result"`
}

type treesResponse struct {
	Trees []tree.Tree `json:"trees"`
}
