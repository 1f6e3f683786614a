package api

import (
	"net/http"

	reqdto "checkout-service/internal/handler/dto/request"
	"checkout-service/internal/handler/httperr"
	"checkout-service/internal/pkg/errs"
	"checkout-service/internal/usecase/commands"
	"checkout-service/internal/usecase/queries"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	commands commands.CheckoutCommands
	queries  queries.CheckoutQueries
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, qrys queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{
		commands: cmds,
		queries:  qrys,
	}
}

// @Summary Create checkout session
// @Description Create a new checkout session from optional line items and buyer details
// @Tags checkout
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key for replay of mutating calls"
// @Param request body reqdto.CreateCheckoutSessionRequest true "Session input"
// @Success 201 {object} readmodel.SessionRM
// @Failure 400 {object} httperr.Response
// @Router /checkout_sessions [post]
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req reqdto.CreateCheckoutSessionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "invalid_request", "Invalid request format")
		return
	}

	rm, err := h.commands.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.renderCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rm)
}

// @Summary Get checkout session
// @Description Get a checkout session by ID
// @Tags checkout
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} readmodel.SessionRM
// @Failure 404 {object} httperr.Response
// @Router /checkout_sessions/{id} [get]
func (h *CheckoutHandler) Get(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	rm, err := h.queries.Get(c.Request.Context(), id)
	if err != nil {
		h.renderLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary Update checkout session
// @Description Replace line items and/or patch buyer details on a session
// @Tags checkout
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key for replay of mutating calls"
// @Param id path string true "Session ID"
// @Param request body reqdto.UpdateCheckoutSessionRequest true "Session update"
// @Success 200 {object} readmodel.SessionRM
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /checkout_sessions/{id} [post]
func (h *CheckoutHandler) Update(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateCheckoutSessionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "invalid_request", "Invalid request format")
		return
	}

	rm, err := h.commands.Update(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		h.renderCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// @Summary Complete checkout session
// @Description Complete a ready session; a session that is not ready is returned unchanged with a not_ready message
// @Tags checkout
// @Produce json
// @Param Idempotency-Key header string false "Idempotency key for replay of mutating calls"
// @Param id path string true "Session ID"
// @Success 200 {object} readmodel.SessionRM
// @Failure 404 {object} httperr.Response
// @Router /checkout_sessions/{id}/complete [post]
func (h *CheckoutHandler) Complete(c *gin.Context) {
	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	rm, err := h.commands.Complete(c.Request.Context(), id)
	if err != nil {
		h.renderCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, rm)
}

// sessionID treats a malformed id the same as an unknown one: session
// identifiers are opaque to callers.
func (h *CheckoutHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortCanceled(c, http.StatusNotFound, err, "not_found", "Checkout session not found")
		return uuid.Nil, false
	}
	return id, true
}

func (h *CheckoutHandler) renderCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidRequest):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid_request", "Invalid checkout request")
	case errors.Is(err, errs.ErrSessionCompleted):
		httperr.AbortWithError(c, http.StatusConflict, err, "already_completed", "Checkout session is already completed")
	default:
		h.renderLookupError(c, err)
	}
}

func (h *CheckoutHandler) renderLookupError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrSessionExpired):
		httperr.AbortCanceled(c, http.StatusNotFound, err, "expired", "Checkout session has expired")
	case errors.Is(err, errs.ErrSessionNotFound):
		httperr.AbortCanceled(c, http.StatusNotFound, err, "not_found", "Checkout session not found")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal_error", "Internal server error")
	}
}
