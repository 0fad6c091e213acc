package usecase

import (
	"github.com/mittalrohan/kirana/internal/pkg/models"
	"github.com/mittalrohan/kirana/services/session"
)

// SessionUC implements session.SessionUC
type SessionUC struct {
	repo session.SessionRepo
	gw   session.SessionGW
	cfg  *models.Config
}

// NewSessionUC creates a new session usecase instance
func NewSessionUC(
	repo session.SessionRepo,
	gw session.SessionGW,
	cfg *models.Config,
) *SessionUC {
	return &SessionUC{
		repo: repo,
		gw:   gw,
		cfg:  cfg,
	}
}
