package model

import "github.com/virtualpalace/palace-tour-service/pkg/profile"

type User struct {
	UserID    string       `json:"userID"`
	Email     string       `json:"email"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	ImageURL  *string      `json:"imageURL,omitempty"`
	Role      profile.Role `json:"role"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user guide admin"`
}
