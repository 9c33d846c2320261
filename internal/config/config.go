package config

import "github.com/spf13/viper"

type Config struct {
	Env        string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string
}

// Load reads configuration from environment variables with sane local
// defaults. A .env file, if present, is loaded by main before this runs.
func Load() *Config {
	v := viper.New()
	v.SetDefault("env", "local")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "trivia")
	v.SetDefault("server_port", "8080")
	v.AutomaticEnv()

	return &Config{
		Env:        v.GetString("env"),
		DBHost:     v.GetString("db_host"),
		DBPort:     v.GetString("db_port"),
		DBUser:     v.GetString("db_user"),
		DBPassword: v.GetString("db_password"),
		DBName:     v.GetString("db_name"),
		ServerPort: v.GetString("server_port"),
	}
}
