package testutil

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/saulo-duarte/trivia-api/internal/container"
)

// NewHandler wires the full router over db with the default page size.
func NewHandler(db *gorm.DB) http.Handler {
	return container.Build(db, 10).Handler()
}
