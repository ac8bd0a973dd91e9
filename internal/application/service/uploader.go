package service

import (
	"context"
	"io"
)

// Uploader abstracts the hosted object store that holds images, CVs and
// report attachments.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string, publicID string) (string, error)
	Delete(ctx context.Context, publicID string) error
}
