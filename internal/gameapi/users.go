package gameapi

import (
	"context"
	"errors"
	"net/http"

	"matchday/frontend/internal/models"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges credentials for the user's profile. The profile is the
// whole session; no token comes back.
func (c *Client) Login(ctx context.Context, username, password string) (models.UserProfile, error) {
	var profile models.UserProfile
	err := c.do(ctx, http.MethodPost, "/api/users/login", loginRequest{Username: username, Password: password}, &profile)
	if err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

// Signup creates an account and returns the stored profile. Field-level
// rejections (taken username, bad enum value) come back as *ValidationError.
func (c *Client) Signup(ctx context.Context, input models.SignupInput) (models.UserProfile, error) {
	var profile models.UserProfile
	if err := c.do(ctx, http.MethodPost, "/api/users/signup", input, &profile); err != nil {
		var srv *ServerError
		if errors.As(err, &srv) && isRejection(srv.Status) {
			return models.UserProfile{}, &ValidationError{Message: srv.Message}
		}
		return models.UserProfile{}, err
	}
	return profile, nil
}
