package models

// User is the authenticated identity as returned by /auth/me and /auth/login.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// DisplayName prefers the email, which is what the header greets with.
func (u User) DisplayName() string {
	if u.Email != "" {
		return u.Email
	}
	return u.Username
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// Ack is the {"msg": ...} body of update, delete and register responses.
type Ack struct {
	Message string `json:"msg"`
}

// Created is the body of a successful create.
type Created struct {
	ID      int64  `json:"id"`
	Message string `json:"msg"`
}
