package api

import (
	"errors"
	"net/http"

	reqdto "leadpipe/internal/handler/dto/request"
	resdto "leadpipe/internal/handler/dto/response"
	"leadpipe/internal/handler/httperr"
	"leadpipe/internal/pkg/metrics"
	"leadpipe/internal/usecase/commands"
	"leadpipe/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NewsletterHandler struct {
	cmds commands.NewsletterCommands
	q    queries.NewsletterQueries
}

func NewNewsletterHandler(cmds commands.NewsletterCommands, q queries.NewsletterQueries) *NewsletterHandler {
	return &NewsletterHandler{cmds: cmds, q: q}
}

// @Summary Subscribe to newsletter
// @Description Subscribe an email address to the newsletter
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body reqdto.SubscribeRequest true "Subscribe request"
// @Success 201 {object} resdto.SubscriberResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /newsletter [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req reqdto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Subscribe(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email address", nil)
		case errors.Is(err, commands.ErrDuplicateSubscriber):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already subscribed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to subscribe", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSubscriberView(view))
}

// @Summary List subscribers
// @Description List newsletter subscribers newest-first
// @Tags newsletter
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "Range start (2006-01-02)"
// @Param endDate query string false "Range end, inclusive (2006-01-02)"
// @Success 200 {array} resdto.SubscriberResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /newsletter [get]
func (h *NewsletterHandler) List(c *gin.Context) {
	rng, err := queries.ParseDateRange(c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date range", nil)
		return
	}

	views, err := h.q.List(c.Request.Context(), rng)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list subscribers", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subscribers": resdto.FromSubscriberList(views)})
}

// @Summary Resend welcome email
// @Description Send the welcome email to a subscriber who has not received it
// @Tags newsletter
// @Produce json
// @Security BearerAuth
// @Param id path string true "Subscriber ID"
// @Success 200 {object} resdto.SubscriberResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /newsletter/{id}/send-welcome [post]
func (h *NewsletterHandler) SendWelcome(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.cmds.SendWelcome(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrSubscriberNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Subscriber not found", nil)
		case errors.Is(err, commands.ErrWelcomeAlreadySent):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Welcome email already sent", nil)
		case errors.Is(err, commands.ErrMailDeliveryFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to deliver email", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to send welcome email", nil)
		}
		return
	}

	metrics.RecordWelcomeEmail(metrics.TriggerManual)
	c.JSON(http.StatusOK, resdto.FromSubscriberView(view))
}

// @Summary Delete subscriber
// @Description Remove a subscriber from the newsletter
// @Tags newsletter
// @Security BearerAuth
// @Param id path string true "Subscriber ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /newsletter/{id} [delete]
func (h *NewsletterHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrSubscriberNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Subscriber not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete subscriber", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscriber deleted"})
}
