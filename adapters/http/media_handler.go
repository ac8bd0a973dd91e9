package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	mediaUC "github.com/sanketgaikwad/portfolio-api/internal/application/usecase/media"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

type MediaHandler struct {
	ingestFileUC *mediaUC.IngestFileUseCase
	logger       logger.Logger
}

func NewMediaHandler(ingestUC *mediaUC.IngestFileUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{
		ingestFileUC: ingestUC,
		logger:       log,
	}
}

func (h *MediaHandler) UploadFile(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("'file' is required", err))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("failed to open file", err))
		return
	}
	defer file.Close()

	cropSquare, _ := strconv.ParseBool(c.PostForm("crop_square"))

	input := mediaUC.IngestFileInput{
		File:       file,
		Size:       fileHeader.Size,
		Filename:   fileHeader.Filename,
		Folder:     c.PostForm("folder"),
		CropSquare: cropSquare,
	}

	output, err := h.ingestFileUC.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"url":          output.URL,
		"content_type": output.ContentType,
	})
}
