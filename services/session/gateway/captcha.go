package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/mittalrohan/kirana/internal/pkg/apperrors"
	"github.com/mittalrohan/kirana/internal/pkg/circuitbreaker"
	"github.com/mittalrohan/kirana/internal/pkg/logger"
)

// captchaVerifyResult is the siteverify response shape
type captchaVerifyResult struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// VerifyCaptcha checks the caller's captcha token against the external
// verifier. Gate rejection and verifier unavailability are distinct
// error classes: the first is final, the second is retryable.
func (g *SessionGW) VerifyCaptcha(ctx context.Context, captchaToken, remoteIP string) error {
	if !g.cfg.Captcha.Enabled {
		return nil
	}
	if captchaToken == "" {
		return apperrors.ErrCaptchaRejected
	}

	var result captchaVerifyResult

	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		form := url.Values{}
		form.Set("secret", g.cfg.Captcha.Secret)
		form.Set("response", captchaToken)
		if remoteIP != "" {
			form.Set("remoteip", remoteIP)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			g.cfg.Captcha.VerifyURL, strings.NewReader(form.Encode()))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := g.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("verifier returned status %d", resp.StatusCode)
		}

		return json.NewDecoder(resp.Body).Decode(&result)
	})

	if err != nil {
		if errors.Is(err, circuitbreaker.ErrOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: captcha verifier circuit open", apperrors.ErrProviderUnavailable)
		}
		logger.Warn("Captcha verifier call failed", logger.Err(err))
		return fmt.Errorf("%w: %v", apperrors.ErrProviderUnavailable, err)
	}

	if !result.Success {
		logger.Info("Captcha rejected",
			logger.Any("error_codes", result.ErrorCodes))
		return apperrors.ErrCaptchaRejected
	}

	return nil
}
