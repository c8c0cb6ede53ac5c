package model

type GoogleLoginRequest struct {
	// Credential is a Google ID token obtained by the frontend.
	Credential string `json:"credential" validate:"required_without=Code"`
	// Code is an OAuth2 authorization code, exchanged server-side.
	Code string `json:"code" validate:"required_without=Credential"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
