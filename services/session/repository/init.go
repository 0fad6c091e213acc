package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/mittalrohan/kirana/internal/pkg/database"
	"github.com/mittalrohan/kirana/internal/pkg/models"
)

// SessionRepo implements session.SessionRepo over PostgreSQL and Redis
type SessionRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewSessionRepo creates a new session repository instance
func NewSessionRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *SessionRepo {
	return &SessionRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
