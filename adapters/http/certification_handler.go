package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sanketgaikwad/portfolio-api/internal/application/store"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
)

type CertificationHandler struct {
	store *store.Store
}

func NewCertificationHandler(st *store.Store) *CertificationHandler {
	return &CertificationHandler{store: st}
}

func (h *CertificationHandler) CreateCertification(c *gin.Context) {
	var req CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid certification payload", err))
		return
	}

	created, err := h.store.Certifications().Add(c.Request.Context(), req.ToDomain(uuid.Nil))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *CertificationHandler) UpdateCertification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid certification ID", err))
		return
	}

	var req CertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid certification payload", err))
		return
	}

	if err := h.store.Certifications().Update(c.Request.Context(), req.ToDomain(id)); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Certification updated"})
}

func (h *CertificationHandler) DeleteCertification(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid certification ID", err))
		return
	}

	if err := h.store.Certifications().Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
