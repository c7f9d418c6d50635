// Package storage provides object storage for generated budget exports.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
)

// ExportRepository defines the interface for export file storage operations
type ExportRepository interface {
	Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error)
	Delete(ctx context.Context, objectPath string) error
	GeneratePresignedURL(ctx context.Context, objectPath string, expiry time.Duration) (string, error)
}

// GenerateObjectPath creates a unique object path for a profile export.
// Layout: <user id>/exports/<profile id>/<random>.<ext>
func GenerateObjectPath(userID, profileID uuid.UUID, ext string) string {
	filename := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	return path.Join(userID.String(), "exports", profileID.String(), filename)
}
