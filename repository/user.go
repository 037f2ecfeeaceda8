package repository

import (
	"context"
	"errors"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	genmodel "github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/model"
	"github.com/virtualpalace/palace-tour-service/.gen/palace_tour/public/table"
	"github.com/virtualpalace/palace-tour-service/pkg/generator"
	"github.com/virtualpalace/palace-tour-service/pkg/logger"
)

type User interface {
	GetUser(ctx context.Context, filter genmodel.Users) (genmodel.Users, error)
	GetUsers(ctx context.Context) ([]genmodel.Users, error)
	CreateUser(ctx context.Context, user genmodel.Users) (string, error)
	UpdateUserRole(ctx context.Context, userID, role string) (int64, error)
	DeleteUser(ctx context.Context, userID string) (int64, error)
}

type user struct {
	pgPool *pgxpool.Pool
}

func NewUserRepository(pgPool *pgxpool.Pool) User {
	return &user{
		pgPool: pgPool,
	}
}

func (r *user) GetUser(ctx context.Context, filter genmodel.Users) (user genmodel.Users, err error) {
	users := table.Users

	var condition postgres.BoolExpression
	if filter.UserID != uuid.Nil {
		condition = users.UserID.EQ(postgres.UUID(filter.UserID))
	} else if filter.Email != "" {
		condition = users.Email.EQ(postgres.String(filter.Email))
	} else {
		err = errors.New("filter must be provided")
		logger.Context(ctx).Error(err)
		return
	}

	query, args := users.
		SELECT(users.UserID, users.Email, users.Password, users.FirstName, users.LastName, users.ImageURL, users.Role).
		WHERE(condition).
		Sql()
	err = r.pgPool.QueryRow(ctx, query, args...).
		Scan(&user.UserID, &user.Email, &user.Password, &user.FirstName, &user.LastName, &user.ImageURL, &user.Role)
	if err != nil {
		return
	}

	return user, nil
}

func (r *user) GetUsers(ctx context.Context) (users []genmodel.Users, err error) {
	userTable := table.Users

	query, args := userTable.
		SELECT(userTable.UserID, userTable.Email, userTable.FirstName, userTable.LastName, userTable.ImageURL, userTable.Role).
		ORDER_BY(userTable.CreatedAt.ASC()).
		Sql()

	rows, err := r.pgPool.Query(ctx, query, args...)
	if err != nil {
		logger.Context(ctx).Error(err)
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var user genmodel.Users
		err = rows.Scan(&user.UserID, &user.Email, &user.FirstName, &user.LastName, &user.ImageURL, &user.Role)
		if err != nil {
			logger.Context(ctx).Error(err)
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *user) CreateUser(ctx context.Context, user genmodel.Users) (string, error) {
	users := table.Users

	user.UserID = uuid.MustParse(generator.UUID())
	user.CreatedAt = time.Now()

	sql, args := users.
		INSERT(users.UserID, users.Email, users.Password, users.FirstName, users.LastName, users.ImageURL, users.Role, users.CreatedAt).
		MODEL(user).
		Sql()
	_, err := r.pgPool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Context(ctx).Error(err)
		return "", err
	}

	return user.UserID.String(), nil
}

func (r *user) UpdateUserRole(ctx context.Context, userID, role string) (int64, error) {
	users := table.Users

	now := time.Now()
	update := genmodel.Users{Role: role, UpdatedAt: &now}

	sql, args := users.
		UPDATE(users.Role, users.UpdatedAt).
		WHERE(users.UserID.EQ(postgres.UUID(uuid.MustParse(userID)))).
		MODEL(update).
		Sql()
	result, err := r.pgPool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Context(ctx).Error(err)
		return 0, err
	}

	return result.RowsAffected(), nil
}

func (r *user) DeleteUser(ctx context.Context, userID string) (int64, error) {
	users := table.Users

	sql, args := users.
		DELETE().
		WHERE(users.UserID.EQ(postgres.UUID(uuid.MustParse(userID)))).
		Sql()
	result, err := r.pgPool.Exec(ctx, sql, args...)
	if err != nil {
		logger.Context(ctx).Error(err)
		return 0, err
	}

	return result.RowsAffected(), nil
}
