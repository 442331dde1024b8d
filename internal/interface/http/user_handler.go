package handlers

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "videotube/internal/application"
	"videotube/internal/domain/entity"
	"videotube/pkg/helpers"
	"videotube/pkg/pagination"
	"videotube/pkg/response"
	"videotube/pkg/validation"
)

type UserHandler struct {
	Svc     *app.UserService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewUserHandler(svc *app.UserService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type registerRequest struct {
	Username string `form:"username" binding:"required,username"`
	Email    string `form:"email" binding:"required,email"`
	FullName string `form:"full_name" binding:"required"`
	Password string `form:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
}

type uploadImageFn func(ctx context.Context, userID string, r io.Reader, filename, contentType string) (string, error)

func userView(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"full_name":  u.FullName,
		"avatar_url": u.AvatarURL,
		"cover_url":  u.CoverURL,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

// Register creates an account from a multipart form so avatar and cover
// images can ride along with the credentials.
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), app.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		FullName: req.FullName,
		Password: req.Password,
	})
	if err != nil {
		fail(c, err)
		return
	}

	if fh, ferr := c.FormFile("avatar"); ferr == nil {
		if url := h.uploadImage(c, u.ID, fh, h.Svc.UploadAvatar); url != "" {
			u.AvatarURL = url
		}
	}
	if fh, ferr := c.FormFile("cover"); ferr == nil {
		if url := h.uploadImage(c, u.ID, fh, h.Svc.UploadCover); url != "" {
			u.CoverURL = url
		}
	}

	response.Success(c, http.StatusCreated, userView(u), "account created", nil)
}

func (h *UserHandler) uploadImage(c *gin.Context, userID string, fh *multipart.FileHeader, upload uploadImageFn) string {
	f, err := fh.Open()
	if err != nil {
		return ""
	}
	defer f.Close()
	url, err := upload(c.Request.Context(), userID, f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("user_id", userID).Warn("image upload failed")
		}
		return ""
	}
	return url
}

// Login accepts either email or username as the identifier.
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	identifier := req.Email
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" {
		response.Error[any](c, http.StatusBadRequest, "email or username required", nil)
		return
	}

	u, pair, err := h.Svc.Login(c.Request.Context(), identifier, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success(c, http.StatusOK, gin.H{
		"user":          userView(u),
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	}, "login successful", gin.H{
		"access_expires_at":  pair.AccessTokenExpiry,
		"refresh_expires_at": pair.RefreshTokenExpiry,
	})
}

func (h *UserHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.Error[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	pair, _, err := h.Svc.Refresh(c.Request.Context(), refresh)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.Success[any](c, http.StatusOK, gin.H{"refreshed": true}, "token refreshed", gin.H{
		"access_expires_at":  pair.AccessTokenExpiry,
		"refresh_expires_at": pair.RefreshTokenExpiry,
	})
}

func (h *UserHandler) Logout(c *gin.Context) {
	h.Svc.Logout(c.Request.Context(), actorID(c))
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

func (h *UserHandler) Me(c *gin.Context) {
	u, err := h.Svc.GetProfile(c.Request.Context(), actorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, userView(u), "profile", nil)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), actorID(c), app.UpdateProfileInput{
		FullName: req.FullName,
		Email:    req.Email,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, userView(u), "profile updated", nil)
}

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	h.replaceImage(c, "avatar", h.Svc.UploadAvatar)
}

func (h *UserHandler) UploadCover(c *gin.Context) {
	h.replaceImage(c, "cover", h.Svc.UploadCover)
}

func (h *UserHandler) replaceImage(c *gin.Context, field string, upload uploadImageFn) {
	fh, err := c.FormFile(field)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, field+" file is required", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable "+field+" file", nil)
		return
	}
	defer f.Close()
	url, err := upload(c.Request.Context(), actorID(c), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{field + "_url": url}, field+" updated", nil)
}

// Channel renders the public channel page for a username. Works for guests;
// is_subscribed reflects the viewer when a session is present.
func (h *UserHandler) Channel(c *gin.Context) {
	profile, err := h.Svc.Channel(c.Request.Context(), c.Param("username"), actorID(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, profile, "channel profile", nil)
}

func (h *UserHandler) WatchHistory(c *gin.Context) {
	p := pagination.FromQuery(c, 10)
	entries, meta, err := h.Svc.WatchHistory(c.Request.Context(), actorID(c), p)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, entries, "watch history", meta)
}
