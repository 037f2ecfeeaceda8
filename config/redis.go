package config

type RedisConfig struct {
	Host     string `env:"HOST,required"`
	Port     string `env:"PORT"`
	Username string `env:"USERNAME"`
	Password string `env:"PASSWORD"`
}
