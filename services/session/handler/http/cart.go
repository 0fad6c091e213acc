package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mittalrohan/kirana/internal/pkg/logger"
	"github.com/mittalrohan/kirana/internal/pkg/models"
	"github.com/mittalrohan/kirana/internal/utils"
	"github.com/mittalrohan/kirana/services/session"
)

// HeaderGuestSession carries the anonymous session id on guest-cart
// requests and as the lazy-merge hint on GET /cart.
const HeaderGuestSession = "X-Guest-Session"

// CartHandler handles guest and user cart endpoints
type CartHandler struct {
	sessionUC session.SessionUC
}

// NewCartHandler creates a new cart handler
func NewCartHandler(sessionUC session.SessionUC) *CartHandler {
	return &CartHandler{sessionUC: sessionUC}
}

// GetCart handles GET /cart for an authenticated subject. A guest
// session header completes any pending merge first.
func (h *CartHandler) GetCart(c echo.Context) error {
	subjectID, _ := c.Get("subject_id").(string)
	guestSessionID := c.Request().Header.Get(HeaderGuestSession)

	cart, err := h.sessionUC.GetUserCart(c.Request().Context(), subjectID, guestSessionID)
	if err != nil {
		logger.Error("Failed to fetch user cart",
			logger.ErrorField(err),
			logger.String("subject_id", subjectID))
		return utils.InternalServerErrorResponse(c, "Failed to fetch cart")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cart retrieved", cart)
}

// MergeCart handles POST /cart/merge
func (h *CartHandler) MergeCart(c echo.Context) error {
	subjectID, _ := c.Get("subject_id").(string)

	var req models.MergeCartRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.GuestSessionID == "" {
		return utils.BadRequestResponse(c, "guest_session_id is required")
	}

	cart, err := h.sessionUC.MergeGuestCart(c.Request().Context(), req.GuestSessionID, subjectID)
	if err != nil {
		logger.Error("Cart merge failed",
			logger.ErrorField(err),
			logger.String("subject_id", subjectID))
		return utils.InternalServerErrorResponse(c, "Cart merge failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cart merged", cart)
}

// GetGuestCart handles GET /cart/guest
func (h *CartHandler) GetGuestCart(c echo.Context) error {
	guestSessionID := c.Request().Header.Get(HeaderGuestSession)
	if guestSessionID == "" {
		return utils.BadRequestResponse(c, "X-Guest-Session header is required")
	}

	cart, err := h.sessionUC.GetGuestCart(c.Request().Context(), guestSessionID)
	if err != nil {
		logger.Error("Failed to fetch guest cart", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to fetch cart")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Cart retrieved", cart)
}

// AddGuestItem handles POST /cart/guest/items
func (h *CartHandler) AddGuestItem(c echo.Context) error {
	guestSessionID := c.Request().Header.Get(HeaderGuestSession)
	if guestSessionID == "" {
		return utils.BadRequestResponse(c, "X-Guest-Session header is required")
	}

	var req models.AddItemRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.ItemRef == "" || req.Quantity <= 0 {
		return utils.BadRequestResponse(c, "item_ref and a positive quantity are required")
	}

	cart, err := h.sessionUC.AddGuestItem(c.Request().Context(), guestSessionID, models.CartItem{
		ItemRef:  req.ItemRef,
		Quantity: req.Quantity,
	})
	if err != nil {
		logger.Error("Failed to add guest cart item", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to add item")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Item added", cart)
}
