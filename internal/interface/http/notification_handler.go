package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "videotube/internal/application"
	"videotube/pkg/pagination"
	"videotube/pkg/response"
)

type NotificationHandler struct {
	Svc *app.NotificationService
}

func NewNotificationHandler(svc *app.NotificationService) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	p := pagination.FromQuery(c, 10)
	items, meta, err := h.Svc.ListForUser(c.Request.Context(), actorID(c), p)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, items, "notifications", meta)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.Svc.MarkRead(c.Request.Context(), c.Param("id"), actorID(c)); err != nil {
		fail(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"read": true}, "notification marked read", nil)
}
