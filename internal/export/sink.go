package export

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/momentumhq/momentum-backend/internal/apierror"
)

// Sink receives rendered export content. Implementations decide delivery:
// local file, HTTP download, or nothing at all.
type Sink interface {
	Write(filename string, content []byte, mimeType string) error
}

// FileSink writes exports into a directory on disk.
type FileSink struct {
	Dir string
}

func (s FileSink) Write(filename string, content []byte, _ string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(s.Dir, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	return nil
}

// HTTPSink streams the export as a browser download on an HTTP response.
type HTTPSink struct {
	W http.ResponseWriter
}

func (s HTTPSink) Write(filename string, content []byte, mimeType string) error {
	s.W.Header().Set("Content-Type", mimeType)
	s.W.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := s.W.Write(content); err != nil {
		return fmt.Errorf("failed to write export response: %w", err)
	}
	return nil
}

// NoopSink is used where downloads are not available; every write reports
// the export as unsupported.
type NoopSink struct{}

func (NoopSink) Write(string, []byte, string) error {
	return apierror.ErrExportUnsupported
}
