package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sanketgaikwad/portfolio-api/internal/application/store"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
)

type EducationHandler struct {
	store *store.Store
}

func NewEducationHandler(st *store.Store) *EducationHandler {
	return &EducationHandler{store: st}
}

func (h *EducationHandler) CreateEducation(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid education payload", err))
		return
	}

	created, err := h.store.Education().Add(c.Request.Context(), req.ToDomain(uuid.Nil))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *EducationHandler) UpdateEducation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education ID", err))
		return
	}

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid education payload", err))
		return
	}

	if err := h.store.Education().Update(c.Request.Context(), req.ToDomain(id)); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Education entry updated"})
}

func (h *EducationHandler) DeleteEducation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education ID", err))
		return
	}

	if err := h.store.Education().Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
