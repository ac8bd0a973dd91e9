package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sanketgaikwad/portfolio-api/adapters/persistence"
	"github.com/sanketgaikwad/portfolio-api/internal/application/store"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

// PortfolioHandler serves the aggregate snapshot and the seed transition.
// The public read path goes through Redis first.
type PortfolioHandler struct {
	store  *store.Store
	cache  *persistence.SnapshotCache
	logger logger.Logger
}

func NewPortfolioHandler(st *store.Store, cache *persistence.SnapshotCache, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		store:  st,
		cache:  cache,
		logger: log,
	}
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		if snap, ok := h.cache.Get(ctx); ok {
			c.JSON(http.StatusOK, snap)
			return
		}
	}

	snap := h.store.Snapshot()
	if snap == nil {
		c.JSON(http.StatusOK, gin.H{"seeded": false})
		return
	}

	if h.cache != nil {
		h.cache.Set(ctx, snap)
	}
	c.JSON(http.StatusOK, snap)
}

func (h *PortfolioHandler) GetState(c *gin.Context) {
	states := map[store.State]string{
		store.StateUninitialized: "uninitialized",
		store.StateLoading:       "loading",
		store.StateEmpty:         "empty",
		store.StateReady:         "ready",
	}
	c.JSON(http.StatusOK, gin.H{"state": states[h.store.State()]})
}

func (h *PortfolioHandler) Seed(c *gin.Context) {
	if err := h.store.Seed(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Portfolio seeded with default content"})
}
