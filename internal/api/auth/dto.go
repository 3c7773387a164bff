package auth

import "time"

type RegisterRequest struct {
	Username  string `json:"username" validate:"required,alphanum,min=3,max=32"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"firstName" validate:"required,max=64"`
	LastName  string `json:"lastName" validate:"omitempty,max=64"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Username string `json:"username" validate:"omitempty,alphanum"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	UserID       string `json:"userId" validate:"required"`
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type UpdateProfileRequest struct {
	FirstName string `json:"firstName" form:"firstName" validate:"omitempty,max=64"`
	LastName  string `json:"lastName" form:"lastName" validate:"omitempty,max=64"`
	Bio       string `json:"bio" form:"bio" validate:"omitempty,max=500"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Bio       string    `json:"bio"`
	Avatar    string    `json:"avatar"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

type TokenResponse struct {
	AccessToken      string       `json:"token"`
	RefreshToken     string       `json:"refreshToken,omitempty"`
	ExpiresInMinutes float64      `json:"expiresInMinutes"`
	User             UserResponse `json:"user"`
}

// UserGoogle is the payload Google's userinfo endpoint returns.
type UserGoogle struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Picture    string `json:"picture"`
}
