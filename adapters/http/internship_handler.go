package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sanketgaikwad/portfolio-api/internal/application/store"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
)

type InternshipHandler struct {
	store *store.Store
}

func NewInternshipHandler(st *store.Store) *InternshipHandler {
	return &InternshipHandler{store: st}
}

func (h *InternshipHandler) CreateInternship(c *gin.Context) {
	var req InternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid internship payload", err))
		return
	}

	created, err := h.store.Internships().Add(c.Request.Context(), req.ToDomain(uuid.Nil))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *InternshipHandler) UpdateInternship(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid internship ID", err))
		return
	}

	var req InternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid internship payload", err))
		return
	}

	if err := h.store.Internships().Update(c.Request.Context(), req.ToDomain(id)); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Internship updated"})
}

func (h *InternshipHandler) DeleteInternship(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid internship ID", err))
		return
	}

	if err := h.store.Internships().Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
