package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/cc-quota/internal/ports"
)

// Source reads the credentials file Claude Code keeps next to its settings,
// typically ~/.claude/.credentials.json.
type Source struct {
	path string
}

var _ ports.CredentialSource = (*Source)(nil)

func NewSource(path string) *Source {
	return &Source{path: filepath.Clean(path)}
}

func (s *Source) Name() string {
	return "file"
}

func (s *Source) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(s.path) == "" || s.path == "." {
		return nil, errors.New("credentials path is empty")
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("credentials file %q not found: %w", s.path, err)
		}
		return nil, fmt.Errorf("read credentials file %q: %w", s.path, err)
	}

	return data, nil
}
