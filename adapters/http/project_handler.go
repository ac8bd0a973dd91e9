package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sanketgaikwad/portfolio-api/internal/application/store"
	"github.com/sanketgaikwad/portfolio-api/internal/domain/project"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
)

// ProjectHandler serves both the finished and the ongoing collections; the
// router binds each route set to the matching collection.
type ProjectHandler struct {
	store *store.Store
}

func NewProjectHandler(st *store.Store) *ProjectHandler {
	return &ProjectHandler{store: st}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	h.create(c, h.store.Projects())
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	h.update(c, h.store.Projects())
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	h.delete(c, h.store.Projects())
}

func (h *ProjectHandler) CreateOngoingProject(c *gin.Context) {
	h.create(c, h.store.OngoingProjects())
}

func (h *ProjectHandler) UpdateOngoingProject(c *gin.Context) {
	h.update(c, h.store.OngoingProjects())
}

func (h *ProjectHandler) DeleteOngoingProject(c *gin.Context) {
	h.delete(c, h.store.OngoingProjects())
}

func (h *ProjectHandler) create(c *gin.Context, col *store.Collection[project.Project]) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid project payload", err))
		return
	}

	created, err := col.Add(c.Request.Context(), req.ToDomain(uuid.Nil))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProjectHandler) update(c *gin.Context, col *store.Collection[project.Project]) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid project payload", err))
		return
	}

	if err := col.Update(c.Request.Context(), req.ToDomain(id)); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project updated"})
}

func (h *ProjectHandler) delete(c *gin.Context, col *store.Collection[project.Project]) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}

	if err := col.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
