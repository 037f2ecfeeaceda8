package redis

import (
	"context"
	"time"

	"github.com/virtualpalace/palace-tour-service/pkg/logger"

	goredis "github.com/redis/go-redis/v9"
)

const (
	defaultMaxRetries          = 3
	defaultMaxIdleConnLifetime = 30 * time.Minute
)

type Option interface {
	apply(*redis)
}

type optionFunc func(*redis)

func (o optionFunc) apply(r *redis) {
	o(r)
}

func WithHost(host string) Option {
	return optionFunc(func(r *redis) {
		r.host = host
	})
}

func WithPort(port string) Option {
	return optionFunc(func(r *redis) {
		r.port = port
	})
}

func WithUsername(username string) Option {
	return optionFunc(func(r *redis) {
		r.username = username
	})
}

func WithPassword(password string) Option {
	return optionFunc(func(r *redis) {
		r.password = password
	})
}

func WithMaxRetries(n int) Option {
	return optionFunc(func(r *redis) {
		r.maxRetries = n
	})
}

type redis struct {
	host                string
	port                string
	username            string
	password            string
	maxRetries          int
	maxIdleConnLifetime time.Duration
}

func NewClient(options ...Option) *goredis.Client {
	r := &redis{
		maxRetries:          defaultMaxRetries,
		maxIdleConnLifetime: defaultMaxIdleConnLifetime,
	}
	for _, o := range options {
		o.apply(r)
	}

	logger.Infof("redis: connecting to %s:%s", r.host, r.port)

	client := goredis.NewClient(&goredis.Options{
		Addr:            r.host + ":" + r.port,
		Username:        r.username,
		Password:        r.password,
		MaxRetries:      r.maxRetries,
		ConnMaxIdleTime: r.maxIdleConnLifetime,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Fatalf("redis: ping: %s", err.Error())
	}

	logger.Infof("redis: connected to %s:%s", r.host, r.port)
	return client
}

func Shutdown(r *goredis.Client) {
	logger.Info("redis: shutting down")
	if err := r.Close(); err != nil {
		logger.Errorf("redis: close: %s", err.Error())
		return
	}
	logger.Info("redis: shutdown")
}
