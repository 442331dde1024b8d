package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "videotube/internal/application"
	"videotube/pkg/pagination"
	"videotube/pkg/response"
)

type SubscriptionHandler struct {
	Svc *app.SubscriptionService
}

func NewSubscriptionHandler(svc *app.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{Svc: svc}
}

func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	res, err := h.Svc.Toggle(c.Request.Context(), actorID(c), c.Param("channelId"))
	if err != nil {
		fail(c, err)
		return
	}
	msg := "unsubscribed successfully"
	if res.Active {
		msg = "subscribed successfully"
	}
	response.Success(c, http.StatusOK, res, msg, nil)
}

func (h *SubscriptionHandler) Subscribers(c *gin.Context) {
	p := pagination.FromQuery(c, 10)
	edges, meta, err := h.Svc.Subscribers(c.Request.Context(), c.Param("channelId"), p)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, edges, "subscribers", meta)
}

func (h *SubscriptionHandler) SubscribedChannels(c *gin.Context) {
	p := pagination.FromQuery(c, 10)
	edges, meta, err := h.Svc.SubscribedChannels(c.Request.Context(), c.Param("subscriberId"), p)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, edges, "subscribed channels", meta)
}
