package feed

import (
	"context"
	"fmt"
	"os"

	"skylight/models"
)

// FileSource reads one local fallback path. The file is expected to contain
// the same JSON shape the remote API serves.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return "file:" + s.path
}

func (s *FileSource) Fetch(ctx context.Context) ([]models.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read fallback file: %w", err)
	}

	items, err := models.DecodeItems(data)
	if err != nil {
		return nil, fmt.Errorf("decode fallback file %s: %w", s.path, err)
	}

	return items, nil
}
