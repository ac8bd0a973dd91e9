package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanketgaikwad/portfolio-api/internal/application/store"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

type ProfileHandler struct {
	store  *store.Store
	logger logger.Logger
}

func NewProfileHandler(st *store.Store, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		store:  st,
		logger: log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	snap := h.store.Snapshot()
	if snap == nil || snap.Profile == nil {
		c.Error(apperror.NewNotFound("profile", "singleton"))
		return
	}
	c.JSON(http.StatusOK, snap.Profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for profile update", err))
		return
	}

	if err := h.store.UpdateProfile(c.Request.Context(), req.ToDomain()); err != nil {
		c.Error(err)
		return
	}

	snap := h.store.Snapshot()
	c.JSON(http.StatusOK, snap.Profile)
}
