package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	suggestUC "github.com/sanketgaikwad/portfolio-api/internal/application/usecase/suggest"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
)

type SuggestHandler struct {
	suggestUC *suggestUC.SuggestContentUseCase
}

func NewSuggestHandler(uc *suggestUC.SuggestContentUseCase) *SuggestHandler {
	return &SuggestHandler{suggestUC: uc}
}

func (h *SuggestHandler) SuggestContent(c *gin.Context) {
	var req SuggestContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid suggestion payload", err))
		return
	}

	output, err := h.suggestUC.Execute(c.Request.Context(), suggestUC.SuggestContentInput{
		ContentType: req.ContentType,
		Content:     req.Content,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output)
}
