package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	app "videotube/internal/application"
	"videotube/pkg/response"
)

// fail translates service errors into HTTP statuses and writes the error
// envelope. Unknown errors become 500 without leaking internals.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, app.ErrInvalidArgument):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, app.ErrSelfSubscription):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, app.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, app.ErrForbidden):
		response.Error[any](c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, app.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, app.ErrDuplicate):
		response.Error[any](c, http.StatusConflict, err.Error(), nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, "internal error", nil)
	}
}

func actorID(c *gin.Context) string {
	return c.GetString("userID")
}
