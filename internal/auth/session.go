package auth

import (
	"time"

	"github.com/baharkarakas/marina-backend/internal/models"
)

// Session is handed to a caller after a successful register or login. The
// caller keeps it; nothing about it is held server-side.
type Session struct {
	User      models.User `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
}
