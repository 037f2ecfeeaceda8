package main

import (
	"log"
	"time"
	_ "time/tzdata"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/virtualpalace/palace-tour-service/config"
	httphandler "github.com/virtualpalace/palace-tour-service/http"
	"github.com/virtualpalace/palace-tour-service/pkg/database/postgresql"
	"github.com/virtualpalace/palace-tour-service/pkg/database/redis"
	"github.com/virtualpalace/palace-tour-service/pkg/envconfig"
	httpmiddleware "github.com/virtualpalace/palace-tour-service/pkg/http/middleware"
	httpserver "github.com/virtualpalace/palace-tour-service/pkg/http/server"
	"github.com/virtualpalace/palace-tour-service/pkg/logger"
	"github.com/virtualpalace/palace-tour-service/pkg/session"
	"github.com/virtualpalace/palace-tour-service/repository"
	"github.com/virtualpalace/palace-tour-service/service"
)

func main() {
	var cfg config.Config
	if err := envconfig.Parse(&cfg); err != nil {
		log.Fatal(err)
	}
	logger.New(cfg.App.Environment)
	defer logger.Sync()

	pgPool := postgresql.New(
		postgresql.WithHost(cfg.PostgreSQL.Host),
		postgresql.WithPort(cfg.PostgreSQL.Port),
		postgresql.WithUsername(cfg.PostgreSQL.Username),
		postgresql.WithPassword(cfg.PostgreSQL.Password),
		postgresql.WithDBName(cfg.PostgreSQL.DBName),
		postgresql.WithMaxConnLifetime(time.Duration(cfg.PostgreSQL.MaxConnLifetime)*time.Minute),
		postgresql.WithMaxOpenConns(cfg.PostgreSQL.MaxOpenConns),
		postgresql.WithMaxIdleConns(cfg.PostgreSQL.MaxIdleConns),
	)
	defer postgresql.Shutdown(pgPool)

	redisClient := redis.NewClient(
		redis.WithHost(cfg.Redis.Host),
		redis.WithPort(cfg.Redis.Port),
		redis.WithUsername(cfg.Redis.Username),
		redis.WithPassword(cfg.Redis.Password),
	)
	defer redis.Shutdown(redisClient)

	userRepository := repository.NewUserRepository(pgPool)
	guideRepository := repository.NewGuideRepository(pgPool)
	artifactRepository := repository.NewArtifactRepository(pgPool)
	tourRepository := repository.NewVirtualTourRepository(pgPool)
	bookingRepository := repository.NewBookingRepository(pgPool)
	cacheRepository := repository.NewCacheRepository(redisClient)

	tokenService := service.NewTokenService(
		cfg.App.AccessTokenSecret,
		cfg.App.RefreshTokenSecret,
		cfg.App.AccessTokenExpired,
		cfg.App.RefreshTokenExpired,
	)
	authenService := service.NewAuthenService(userRepository, cacheRepository, tokenService)
	userService := service.NewUserService(userRepository)
	guideService := service.NewGuideService(guideRepository)
	artifactService := service.NewArtifactService(artifactRepository)
	tourService := service.NewVirtualTourService(tourRepository)
	bookingService := service.NewBookingService(bookingRepository, guideRepository)

	sessionStore := session.NewStore(cfg.App.Environment, cfg.App.AccessTokenExpired, cfg.App.RefreshTokenExpired)

	httpServer := httpserver.New(
		httpserver.WithPort(cfg.App.Port),
		httpserver.WithMiddlewares([]echo.MiddlewareFunc{
			httpmiddleware.RequestID,
			httpmiddleware.NewProfileProvider(
				tokenService,
				sessionStore,
				"POST /auth/register",
				"POST /auth/login",
				"GET /auth/refresh",
				"POST /auth/logout",
				"GET /guides",
				"GET /artifacts",
				"GET /tours",
				"GET /livez",
				"GET /readyz",
			),
		}),
	)

	validate := validator.New()

	httphandler.NewHealthzHandler(httpServer.Routers(), pgPool, redisClient)
	httphandler.NewAuthenHandler(httpServer.Routers(), validate, authenService, sessionStore, httpmiddleware.RateLimit(cfg.App.AuthRateLimitRPS))
	httphandler.NewUserHandler(httpServer.Routers(), validate, userService)
	httphandler.NewGuideHandler(httpServer.Routers(), validate, guideService)
	httphandler.NewArtifactHandler(httpServer.Routers(), validate, artifactService)
	httphandler.NewVirtualTourHandler(httpServer.Routers(), validate, tourService)
	httphandler.NewBookingHandler(httpServer.Routers(), validate, bookingService)

	httpServer.ListenAndServe()
	httpServer.GracefulShutdown()
}
