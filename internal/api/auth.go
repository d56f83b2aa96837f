package api

import "context"

type AuthClient struct{ c *Client }

func NewAuthClient(c *Client) *AuthClient { return &AuthClient{c: c} }

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse mirrors the backend auth DTO. ID, Name and Email are only
// filled in for regular user accounts; admin logins carry the role alone.
type LoginResponse struct {
	Success bool   `json:"success"`
	Role    string `json:"role,omitempty"`
	Message string `json:"message,omitempty"`
	ID      *int64 `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
}

func (ac *AuthClient) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	var res LoginResponse
	err := ac.c.PostJSON(ctx, "/api/auth/login", loginRequest{Email: email, Password: password}, &res)
	if err != nil {
		return LoginResponse{}, err
	}
	return res, nil
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (ac *AuthClient) Register(ctx context.Context, name, email, password string) (RegisterResponse, error) {
	var res RegisterResponse
	err := ac.c.PostJSON(ctx, "/api/users", registerRequest{Name: name, Email: email, Password: password}, &res)
	if err != nil {
		return RegisterResponse{}, err
	}
	return res, nil
}
