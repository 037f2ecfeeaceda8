package config

import "time"

type AppConfig struct {
	Environment         string        `env:"ENVIRONMENT"`
	Port                int           `env:"PORT" envDefault:"8080"`
	AccessTokenSecret   string        `env:"ACCESS_TOKEN_SECRET,required,notEmpty"`
	RefreshTokenSecret  string        `env:"REFRESH_TOKEN_SECRET,required,notEmpty"`
	AccessTokenExpired  time.Duration `env:"ACCESS_TOKEN_EXPIRED" envDefault:"30m"`
	RefreshTokenExpired time.Duration `env:"REFRESH_TOKEN_EXPIRED" envDefault:"168h"`
	AuthRateLimitRPS    int           `env:"AUTH_RATE_LIMIT_RPS" envDefault:"10"`
}
