// Command token issues a bearer token for the routes guarded by JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/saulo-duarte/trivia-api/internal/auth"
	"github.com/saulo-duarte/trivia-api/internal/config"
)

func main() {
	userID := flag.String("user", "admin", "user id placed in the token")
	role := flag.String("role", "admin", "role placed in the token")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()
	settings := config.Load()
	config.Init(settings.LogLevel, "text")
	auth.Init(settings.JWTSecret)

	token, err := auth.GenerateJWT(*userID, *role, *ttl)
	if err != nil {
		logrus.WithError(err).Error("Could not issue token (is JWT_SECRET set?)")
		os.Exit(1)
	}
	fmt.Println(token)
}
