package dto

import "mm-voicenote-be/internal/entity"

// LoginRequest is optional profile data. Empty fields fall back to the fixed
// demo identity; there is no credential check by design.
type LoginRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email" validate:"omitempty,email"`
	Avatar string `json:"avatar"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *entity.User `json:"user"`
}

type SessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *entity.User `json:"user,omitempty"`
}
