package api

import (
	"context"
	"net/http"
	"net/url"
)

// User is the identity record the collaborator hands back on login.
type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	AvatarURL   string `json:"avatarUrl"`
	Role        string `json:"role"`
	Token       string `json:"token"`
}

// LoginRequest carries the credentials for a login attempt.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// Login exchanges credentials for an identity with a session token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (User, error) {
	if err := validateRequest(req); err != nil {
		return User{}, err
	}
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/user/login", nil, req, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// RegisterRequest carries a new account registration.
type RegisterRequest struct {
	Username        string `json:"username"        validate:"required,min=3,max=20"`
	Email           string `json:"email"           validate:"required,email"`
	Password        string `json:"password"        validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Code            string `json:"code,omitempty"`
}

// Register creates an account and returns the new identity.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (User, error) {
	if err := validateRequest(req); err != nil {
		return User{}, err
	}
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/user/register", nil, req, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// SendCode asks the collaborator to email a verification code.
func (c *Client) SendCode(ctx context.Context, email string) error {
	payload := struct {
		Email string `json:"email" validate:"required,email"`
	}{Email: email}
	if err := validateRequest(payload); err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/api/user/send-code", nil, payload, nil)
}

// UpdateUser changes profile fields. The collaborator expects these as
// query parameters on a bodyless PUT, so the fields travel in the URL.
func (c *Client) UpdateUser(ctx context.Context, fields map[string]string) (User, error) {
	query := url.Values{}
	for k, v := range fields {
		query.Set(k, v)
	}
	var user User
	if err := c.do(ctx, http.MethodPut, "/api/user/update", query, nil, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// ChangePassword rotates the account password. Parameters travel in the
// query string, matching the collaborator's contract for this endpoint.
func (c *Client) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	payload := struct {
		OldPassword string `validate:"required"`
		NewPassword string `validate:"required,min=6"`
	}{OldPassword: oldPassword, NewPassword: newPassword}
	if err := validateRequest(payload); err != nil {
		return err
	}

	query := url.Values{
		"oldPassword": {oldPassword},
		"newPassword": {newPassword},
	}
	return c.do(ctx, http.MethodPut, "/api/user/change-password", query, nil, nil)
}
