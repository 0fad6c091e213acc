package gateway

import (
	"net/http"
	"time"

	"github.com/mittalrohan/kirana/internal/pkg/circuitbreaker"
	"github.com/mittalrohan/kirana/internal/pkg/logger"
	"github.com/mittalrohan/kirana/internal/pkg/models"
	"github.com/mittalrohan/kirana/internal/pkg/retry"
)

// Publisher is the outbound event stream. Satisfied by the NSQ producer
// wrapper; tests substitute a fake.
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// SessionGW implements the outbound collaborators of the session
// service: the captcha verifier and the event stream.
type SessionGW struct {
	cfg        *models.Config
	producer   Publisher
	httpClient *http.Client
	breaker    *circuitbreaker.CircuitBreaker
	retrier    *retry.Retrier
}

// NewSessionGW creates a new session gateway
func NewSessionGW(cfg *models.Config, producer Publisher, zapLogger *logger.ZapLogger) *SessionGW {
	breakerCfg := circuitbreaker.DefaultConfig("captcha-verifier")

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = 2
	retryCfg.BaseDelay = 50 * time.Millisecond

	return &SessionGW{
		cfg:      cfg,
		producer: producer,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Captcha.TimeoutSeconds) * time.Second,
		},
		breaker: circuitbreaker.New(breakerCfg, zapLogger),
		retrier: retry.New(retryCfg, zapLogger),
	}
}
