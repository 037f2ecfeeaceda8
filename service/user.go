package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	genmodel "github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/model"
	"github.com/virtualpalace/palace-tour-service/model"
	"github.com/virtualpalace/palace-tour-service/pkg/logger"
	"github.com/virtualpalace/palace-tour-service/pkg/profile"
	"github.com/virtualpalace/palace-tour-service/repository"
)

type User interface {
	GetUserInfo(ctx context.Context) (model.User, error)
	GetUsers(ctx context.Context) ([]model.User, error)
	UpdateUserRole(ctx context.Context, userID string, req model.UpdateUserRoleRequest) error
	DeleteUser(ctx context.Context, userID string) error
}

type user struct {
	userRepository repository.User
}

func NewUserService(userRepository repository.User) User {
	return &user{
		userRepository: userRepository,
	}
}

// GetUserInfo reads the principal behind the verified token. The token is a
// self-contained assertion, so this is where a deleted account surfaces.
func (s *user) GetUserInfo(ctx context.Context) (model.User, error) {
	userProfile, err := profile.UseProfile(ctx)
	if err != nil {
		return model.User{}, err
	}

	userID, err := uuid.Parse(userProfile.UserID)
	if err != nil {
		return model.User{}, model.ErrPrincipalNotFound
	}

	userInfo, err := s.userRepository.GetUser(ctx, genmodel.Users{UserID: userID})
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, model.ErrPrincipalNotFound
	} else if err != nil {
		logger.Context(ctx).Error(err)
		return model.User{}, err
	}

	return toUser(userInfo), nil
}

func (s *user) GetUsers(ctx context.Context) ([]model.User, error) {
	userInfos, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		logger.Context(ctx).Error(err)
		return nil, err
	}

	users := make([]model.User, 0, len(userInfos))
	for _, userInfo := range userInfos {
		users = append(users, toUser(userInfo))
	}
	return users, nil
}

func (s *user) UpdateUserRole(ctx context.Context, userID string, req model.UpdateUserRoleRequest) error {
	if _, err := uuid.Parse(userID); err != nil {
		return model.ErrPrincipalNotFound
	}

	affected, err := s.userRepository.UpdateUserRole(ctx, userID, req.Role)
	if err != nil {
		logger.Context(ctx).Error(err)
		return err
	}
	if affected == 0 {
		return model.ErrPrincipalNotFound
	}
	return nil
}

func (s *user) DeleteUser(ctx context.Context, userID string) error {
	if _, err := uuid.Parse(userID); err != nil {
		return model.ErrPrincipalNotFound
	}

	affected, err := s.userRepository.DeleteUser(ctx, userID)
	if err != nil {
		logger.Context(ctx).Error(err)
		return err
	}
	if affected == 0 {
		return model.ErrPrincipalNotFound
	}
	return nil
}
