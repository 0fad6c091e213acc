package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mittalrohan/kirana/internal/pkg/apperrors"
	"github.com/mittalrohan/kirana/internal/pkg/logger"
	"github.com/mittalrohan/kirana/internal/pkg/models"
	"github.com/mittalrohan/kirana/internal/utils"
	"github.com/mittalrohan/kirana/services/session"
)

// RoleHandler handles the administrative claims-assignment endpoint
type RoleHandler struct {
	sessionUC session.SessionUC
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(sessionUC session.SessionUC) *RoleHandler {
	return &RoleHandler{sessionUC: sessionUC}
}

// AssignRole handles POST /admin/roles
func (h *RoleHandler) AssignRole(c echo.Context) error {
	var req models.RoleChangeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.SubjectID == "" || req.Role == "" {
		return utils.BadRequestResponse(c, "subject_id and role are required")
	}

	if err := h.sessionUC.AssignRole(c.Request().Context(), req.SubjectID, req.Role); err != nil {
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			return utils.NotFoundResponse(c, "Profile not found")
		}
		logger.Error("Role assignment failed",
			logger.ErrorField(err),
			logger.String("subject_id", req.SubjectID))
		return utils.BadRequestResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Role assigned", nil)
}
