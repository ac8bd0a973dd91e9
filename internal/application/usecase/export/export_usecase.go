package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sanketgaikwad/portfolio-api/internal/application/service"
	"github.com/sanketgaikwad/portfolio-api/internal/application/store"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

// ExportUseCase serializes the current content snapshot and parks it in object
// storage, so the owner can pull a point-in-time copy of everything.
type ExportUseCase struct {
	store    *store.Store
	uploader service.Uploader
	logger   logger.Logger
}

func NewExportUseCase(st *store.Store, uploader service.Uploader, log logger.Logger) *ExportUseCase {
	return &ExportUseCase{
		store:    st,
		uploader: uploader,
		logger:   log,
	}
}

type ExportOutput struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

func (uc *ExportUseCase) Execute(ctx context.Context) (*ExportOutput, error) {
	snapshot := uc.store.Snapshot()
	if snapshot == nil {
		return nil, apperror.NewNotFound("portfolio", "snapshot")
	}

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, apperror.NewInternal("failed to serialize snapshot", err)
	}

	timestamp := time.Now().UTC().Format("2006-01-02_15-04-05")
	folder := "backups/content"
	publicID := fmt.Sprintf("export-%s.json", timestamp)

	uploadURL, err := uc.uploader.Upload(ctx, bytes.NewReader(payload), folder, publicID)
	if err != nil {
		uc.logger.Error("Failed to upload content export", err, zap.String("public_id", publicID))
		return nil, apperror.NewInternal("failed to upload export", err)
	}

	uc.logger.Info("Content export uploaded",
		zap.String("url", uploadURL),
		zap.String("public_id", publicID),
	)

	return &ExportOutput{URL: uploadURL, PublicID: publicID}, nil
}
