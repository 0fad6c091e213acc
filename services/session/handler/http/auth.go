package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mittalrohan/kirana/internal/pkg/apperrors"
	"github.com/mittalrohan/kirana/internal/pkg/logger"
	"github.com/mittalrohan/kirana/internal/pkg/models"
	"github.com/mittalrohan/kirana/internal/utils"
	"github.com/mittalrohan/kirana/services/session"
)

// AuthHandler handles the OTP and bootstrap endpoints
type AuthHandler struct {
	sessionUC session.SessionUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(sessionUC session.SessionUC) *AuthHandler {
	return &AuthHandler{sessionUC: sessionUC}
}

// RequestCode handles POST /auth/otp/request
func (h *AuthHandler) RequestCode(c echo.Context) error {
	var req models.RequestCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Destination == "" {
		return utils.BadRequestResponse(c, "destination is required")
	}

	resp, err := h.sessionUC.RequestCode(c.Request().Context(), req.Destination, req.CaptchaToken, c.RealIP())
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidDestination):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, apperrors.ErrCaptchaRejected):
			return utils.ForbiddenResponse(c, "Human verification failed")
		case errors.Is(err, apperrors.ErrRateLimited):
			return utils.TooManyRequestsResponse(c, err.Error())
		case errors.Is(err, apperrors.ErrProviderUnavailable):
			return utils.ServiceUnavailableResponse(c, "Verification temporarily unavailable, please retry")
		}
		logger.Error("Failed to issue verification code", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to issue verification code")
	}

	return utils.SuccessResponse(c, http.StatusAccepted, "Verification code dispatched", resp)
}

// ConfirmCode handles POST /auth/otp/confirm
func (h *AuthHandler) ConfirmCode(c echo.Context) error {
	var req models.ConfirmCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.sessionUC.ConfirmCode(c.Request().Context(), req.ChallengeRef, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCode):
			return utils.BadRequestResponse(c, err.Error())
		case errors.Is(err, apperrors.ErrCodeMismatch):
			return utils.UnauthorizedResponse(c, err.Error())
		case errors.Is(err, apperrors.ErrChallengeConsumed),
			errors.Is(err, apperrors.ErrChallengeExpired):
			return utils.GoneResponse(c, err.Error())
		}
		logger.Error("Failed to confirm verification code", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to confirm verification code")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Identity verified", resp)
}

// Bootstrap handles POST /auth/bootstrap. The identity assertion rides
// the Authorization header; an optional body carries a guest session id.
func (h *AuthHandler) Bootstrap(c echo.Context) error {
	assertion := bearerToken(c)
	if assertion == "" {
		return utils.UnauthorizedResponse(c, "Missing identity assertion")
	}

	var req models.BootstrapRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return utils.BadRequestResponse(c, "Invalid request payload")
		}
	}

	result, err := h.sessionUC.Bootstrap(c.Request().Context(), assertion, req.GuestSessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			return utils.UnauthorizedResponse(c, "Invalid or expired identity assertion")
		}
		logger.Error("Bootstrap failed", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Bootstrap failed, please retry")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session established", result)
}

func bearerToken(c echo.Context) string {
	auth := c.Request().Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "Bearer ") {
		return auth[7:]
	}
	return ""
}
