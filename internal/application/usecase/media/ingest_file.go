package media

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sanketgaikwad/portfolio-api/internal/application/service"
	"github.com/sanketgaikwad/portfolio-api/pkg/apperror"
	"github.com/sanketgaikwad/portfolio-api/pkg/logger"
)

// MaxFileSize is the ingestion ceiling. Anything larger is rejected before
// any state changes.
const MaxFileSize = 10 << 20 // 10 MB

var allowedMIMEs = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"image/gif":       true,
	"application/pdf": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

type IngestFileUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewIngestFileUseCase(u service.Uploader, log logger.Logger) *IngestFileUseCase {
	return &IngestFileUseCase{uploader: u, logger: log}
}

type IngestFileInput struct {
	File     io.Reader
	Size     int64
	Filename string
	Folder   string
	// CropSquare routes jpeg/png images through a centered square crop
	// before upload, for avatars and certification images.
	CropSquare bool
}

type IngestFileOutput struct {
	URL         string
	ContentType string
}

func (uc *IngestFileUseCase) Execute(ctx context.Context, input IngestFileInput) (*IngestFileOutput, error) {
	if input.Size > MaxFileSize {
		return nil, apperror.NewTooLarge(fmt.Sprintf("file %q exceeds the %d byte limit", input.Filename, MaxFileSize))
	}

	// Size from a multipart header is client-supplied; enforce the ceiling
	// on the actual bytes as well.
	data, err := io.ReadAll(io.LimitReader(input.File, MaxFileSize+1))
	if err != nil {
		return nil, apperror.NewInternal("failed to read uploaded file", err)
	}
	if len(data) > MaxFileSize {
		return nil, apperror.NewTooLarge(fmt.Sprintf("file %q exceeds the %d byte limit", input.Filename, MaxFileSize))
	}

	mtype := mimetype.Detect(data)
	if !allowedMIMEs[mtype.String()] {
		return nil, apperror.NewInvalidInput(fmt.Sprintf("file type %s is not allowed", mtype.String()), nil)
	}

	if input.CropSquare && (mtype.Is("image/jpeg") || mtype.Is("image/png")) {
		data, err = cropSquare(data, mtype.String())
		if err != nil {
			return nil, apperror.NewInvalidInput("failed to crop image", err)
		}
	}

	folder := input.Folder
	if folder == "" {
		folder = "portfolio/uploads"
	}
	publicID := uuid.New().String()

	url, err := uc.uploader.Upload(ctx, bytes.NewReader(data), folder, publicID)
	if err != nil {
		uc.logger.Error("Upload to object storage failed", err, zap.String("filename", input.Filename))
		return nil, apperror.NewInternal("failed to upload file", err)
	}

	return &IngestFileOutput{URL: url, ContentType: mtype.String()}, nil
}

// cropSquare re-encodes the centered largest square of the image, the server
// side of the square-aspect crop step the admin forms expect.
func cropSquare(data []byte, contentType string) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}
	cropped := imaging.CropAnchor(img, side, side, imaging.Center)

	format := imaging.JPEG
	if contentType == "image/png" {
		format = imaging.PNG
	}

	var out bytes.Buffer
	if err := imaging.Encode(&out, cropped, format); err != nil {
		return nil, fmt.Errorf("encode cropped image: %w", err)
	}
	return out.Bytes(), nil
}
