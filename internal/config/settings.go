package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Settings struct {
	Port             string
	DatabaseDSN      string
	LogLevel         string
	LogFormat        string
	JWTSecret        string
	AutoMigrate      bool
	QuestionsPerPage int
}

func Load() *Settings {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "trivia")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("QUESTIONS_PER_PAGE", 10)

	dsn := v.GetString("DATABASE_DSN")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			v.GetString("DB_HOST"),
			v.GetString("DB_PORT"),
			v.GetString("DB_USER"),
			v.GetString("DB_PASSWORD"),
			v.GetString("DB_NAME"),
			v.GetString("DB_SSLMODE"),
		)
	}

	perPage := v.GetInt("QUESTIONS_PER_PAGE")
	if perPage <= 0 {
		perPage = 10
	}

	return &Settings{
		Port:             v.GetString("PORT"),
		DatabaseDSN:      dsn,
		LogLevel:         v.GetString("LOG_LEVEL"),
		LogFormat:        v.GetString("LOG_FORMAT"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		AutoMigrate:      v.GetBool("AUTO_MIGRATE"),
		QuestionsPerPage: perPage,
	}
}
