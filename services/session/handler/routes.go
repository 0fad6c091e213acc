package handler

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/mittalrohan/kirana/internal/pkg/models"
	"github.com/mittalrohan/kirana/internal/pkg/token"
	"github.com/mittalrohan/kirana/internal/utils"
	"github.com/mittalrohan/kirana/services/session/handler/http"
)

// Handler coordinates the HTTP handlers of the session service
type Handler struct {
	authHandler *http.AuthHandler
	cartHandler *http.CartHandler
	roleHandler *http.RoleHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	cartHandler *http.CartHandler,
	roleHandler *http.RoleHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler: authHandler,
		cartHandler: cartHandler,
		roleHandler: roleHandler,
		cfg:         cfg,
	}
}

// GetJWTMiddleware returns the session-token guard for protected route
// groups. Identity assertions carry a different audience and are
// rejected here: only the bootstrap endpoint accepts them.
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			claims, err := token.VerifySessionToken(auth, h.cfg)
			if err != nil {
				return nil, err
			}
			c.Set("subject_id", claims.Subject)
			c.Set("role", claims.Role)
			return claims, nil
		},
	})
}

// RequireAdmin guards the administrative group
func (h *Handler) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != models.RoleAdmin {
				return utils.ForbiddenResponse(c, "Admin role required")
			}
			return next(c)
		}
	}
}

// RegisterRoutes registers all routes. The rate limiter applies to the
// code-request route only; the captcha gate covers the rest of the
// public surface.
func (h *Handler) RegisterRoutes(e *echo.Echo, otpRateLimiter echo.MiddlewareFunc) {
	// Public routes
	authGroup := e.Group("/auth")
	authGroup.POST("/otp/request", h.authHandler.RequestCode, otpRateLimiter)
	authGroup.POST("/otp/confirm", h.authHandler.ConfirmCode)
	authGroup.POST("/bootstrap", h.authHandler.Bootstrap)

	// Guest cart routes, keyed by the anonymous session header
	guestGroup := e.Group("/cart/guest")
	guestGroup.GET("", h.cartHandler.GetGuestCart)
	guestGroup.POST("/items", h.cartHandler.AddGuestItem)

	// Session-token protected routes
	protected := e.Group("", h.GetJWTMiddleware())
	protected.GET("/cart", h.cartHandler.GetCart)
	protected.POST("/cart/merge", h.cartHandler.MergeCart)

	adminGroup := protected.Group("/admin", h.RequireAdmin())
	adminGroup.POST("/roles", h.roleHandler.AssignRole)
}
