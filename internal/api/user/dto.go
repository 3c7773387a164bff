package users

import "time"

type UpdateProfileRequest struct {
	FirstName string `json:"firstName" validate:"omitempty,max=64"`
	LastName  string `json:"lastName" validate:"omitempty,max=64"`
	Bio       string `json:"bio" validate:"omitempty,max=500"`
}

type ProfileResponse struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Bio            string    `json:"bio"`
	Avatar         string    `json:"avatar"`
	PublishedBlogs int       `json:"publishedBlogs"`
	Followers      int       `json:"followers"`
	Following      int       `json:"following"`
	FollowedByMe   bool      `json:"followedByMe"`
	CreatedAt      time.Time `json:"createdAt"`
}

type FollowResponse struct {
	Following bool `json:"following"`
	Followers int  `json:"followers"`
}

type UserSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar,omitempty"`
}

type UserListResponse struct {
	Users []UserSummary `json:"users"`
}
