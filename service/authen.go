package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	genmodel "github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/model"
	"github.com/virtualpalace/palace-tour-service/model"
	"github.com/virtualpalace/palace-tour-service/pkg/logger"
	"github.com/virtualpalace/palace-tour-service/pkg/profile"
	"github.com/virtualpalace/palace-tour-service/repository"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

type Authen interface {
	Register(ctx context.Context, req model.RegisterRequest) (model.Session, error)
	Login(ctx context.Context, req model.LoginRequest) (model.Session, error)
	RefreshToken(ctx context.Context, refreshToken string) (string, error)
	RevokeToken(ctx context.Context, refreshToken string) error
}

type authen struct {
	userRepository  repository.User
	cacheRepository repository.Cache
	tokenService    Token
}

// NewAuthenService wires the login boundary and the refresh flow. The cache
// repository is the optional revocation denylist; pass nil to run fully
// stateless.
func NewAuthenService(
	userRepository repository.User,
	cacheRepository repository.Cache,
	tokenService Token,
) Authen {
	return &authen{
		userRepository:  userRepository,
		cacheRepository: cacheRepository,
		tokenService:    tokenService,
	}
}

func (s *authen) Register(ctx context.Context, req model.RegisterRequest) (model.Session, error) {
	_, err := s.userRepository.GetUser(ctx, genmodel.Users{Email: req.Email})
	if err == nil {
		return model.Session{}, model.ErrEmailAlreadyUsed
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		logger.Context(ctx).Error(err)
		return model.Session{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		logger.Context(ctx).Error(err)
		return model.Session{}, err
	}

	role := profile.Role(req.Role)
	if req.Role == "" {
		role = profile.User
	}

	userID, err := s.userRepository.CreateUser(ctx, genmodel.Users{
		Email:     req.Email,
		Password:  string(hashedPassword),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      string(role),
	})
	if err != nil {
		if model.IsConflictError(err) {
			return model.Session{}, model.ErrEmailAlreadyUsed
		}
		logger.Context(ctx).Error(err)
		return model.Session{}, err
	}

	user := model.User{
		UserID:    userID,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      role,
	}

	return s.createSession(ctx, user)
}

func (s *authen) Login(ctx context.Context, req model.LoginRequest) (model.Session, error) {
	userInfo, err := s.userRepository.GetUser(ctx, genmodel.Users{Email: req.Email})
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Session{}, model.ErrInvalidCredentials
	} else if err != nil {
		logger.Context(ctx).Error(err)
		return model.Session{}, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(userInfo.Password), []byte(req.Password)); err != nil {
		return model.Session{}, model.ErrInvalidCredentials
	}

	return s.createSession(ctx, toUser(userInfo))
}

// RefreshToken exchanges a valid refresh token for a new access token. The
// refresh token itself is left untouched. The principal is re-read from the
// store so deleted accounts terminate here and role changes take effect on
// the next access token rather than at some later login.
func (s *authen) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	refreshClaim, err := s.tokenService.DecodeRefreshToken(ctx, refreshToken)
	if err != nil {
		logger.Context(ctx).Error(err)
		return "", err
	}

	if s.cacheRepository != nil {
		revoked, err := s.cacheRepository.IsTokenRevoked(ctx, refreshClaim.Id)
		if err != nil {
			logger.Context(ctx).Error(err)
			return "", err
		}
		if revoked {
			return "", model.ErrTokenRevoked
		}
	}

	userID, err := uuid.Parse(refreshClaim.UserID)
	if err != nil {
		return "", model.ErrPrincipalNotFound
	}

	userInfo, err := s.userRepository.GetUser(ctx, genmodel.Users{UserID: userID})
	if errors.Is(err, pgx.ErrNoRows) {
		return "", model.ErrPrincipalNotFound
	} else if err != nil {
		logger.Context(ctx).Error(err)
		return "", err
	}

	return s.tokenService.IssueAccessToken(ctx, toUser(userInfo))
}

// RevokeToken denylists the presented refresh token until its natural
// expiry. Unreadable tokens are ignored: logout must always succeed.
func (s *authen) RevokeToken(ctx context.Context, refreshToken string) error {
	if s.cacheRepository == nil {
		return nil
	}

	refreshClaim, err := s.tokenService.DecodeRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil
	}

	ttl := time.Until(time.Unix(refreshClaim.ExpiresAt, 0))
	if err := s.cacheRepository.RevokeToken(ctx, refreshClaim.Id, ttl); err != nil {
		logger.Context(ctx).Error(err)
		return err
	}
	return nil
}

func (s *authen) createSession(ctx context.Context, user model.User) (model.Session, error) {
	jwt, err := s.tokenService.IssueTokenPair(ctx, user)
	if err != nil {
		logger.Context(ctx).Error(err)
		return model.Session{}, err
	}
	return model.Session{User: user, JWT: jwt}, nil
}

func toUser(userInfo genmodel.Users) model.User {
	return model.User{
		UserID:    userInfo.UserID.String(),
		Email:     userInfo.Email,
		FirstName: userInfo.FirstName,
		LastName:  userInfo.LastName,
		ImageURL:  userInfo.ImageURL,
		Role:      profile.Role(userInfo.Role),
	}
}
