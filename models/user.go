// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the public account record returned by the blog backend. It never
// carries the password hash.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt Timestamp `json:"created_at"`
}

// RegisterRequest is the body of POST /user/register.
//
// Validation rules mirror the backend: the username is 3 to 20 characters,
// the email must be well-formed and the password has at least 6 characters.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// RegisterResponse is returned by POST /user/register. Token is empty when the
// backend does not issue a session on registration.
type RegisterResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	UserID  int64  `json:"user_id"`
	Message string `json:"message,omitempty"`
}

// Credentials is what a caller supplies to log in. UsernameOrEmail takes
// precedence; Username is accepted as a fallback so that forms which only ask
// for a username keep working.
type Credentials struct {
	UsernameOrEmail string
	Username        string
	Password        string `validate:"required"`
}

// Identifier returns the value sent as username_or_email.
func (c Credentials) Identifier() string {
	if c.UsernameOrEmail != "" {
		return c.UsernameOrEmail
	}
	return c.Username
}

// LoginRequest is the body of POST /user/login.
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email"`
	Password        string `json:"password"`
}

// LoginResponse is returned by POST /user/login.
type LoginResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token,omitempty"`
	UserInfo *User  `json:"user_info,omitempty"`
	Message  string `json:"message,omitempty"`
}

// UserInfoResponse is returned by GET /user/me and PUT /user/me.
type UserInfoResponse struct {
	Success bool   `json:"success"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

// UpdateProfileRequest is the body of PUT /user/me. Nil fields are left
// unchanged by the backend.
type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=3,max=20"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}
