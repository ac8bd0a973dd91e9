package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	exportUC "github.com/sanketgaikwad/portfolio-api/internal/application/usecase/export"
)

type ExportHandler struct {
	exportUC *exportUC.ExportUseCase
}

func NewExportHandler(uc *exportUC.ExportUseCase) *ExportHandler {
	return &ExportHandler{exportUC: uc}
}

func (h *ExportHandler) ExportContent(c *gin.Context) {
	output, err := h.exportUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, output)
}
