package profile

import (
	"context"
	"fmt"
)

type Role string

const ProfileKey = "profile"

const (
	Admin Role = "admin"
	Guide Role = "guide"
	User  Role = "user"
)

func (r Role) IsValid() bool {
	switch r {
	case Admin, Guide, User:
		return true
	}
	return false
}

type Profile struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

func UseProfile(ctx context.Context) (Profile, error) {
	profile, ok := ctx.Value(ProfileKey).(Profile)
	if !ok {
		return Profile{}, fmt.Errorf(`unable to retrieve profile from context`)
	}
	return profile, nil
}

func UseAdminProfile(ctx context.Context) (Profile, error) {
	profile, err := UseProfile(ctx)
	if err != nil {
		return Profile{}, err
	}

	if profile.Role != Admin {
		return Profile{}, fmt.Errorf(`unable to retrieve admin profile from context`)
	}

	return profile, nil
}
