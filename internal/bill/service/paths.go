package service

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/smallbiznis/qrbill/internal/platform"
)

// pathResolver turns user-supplied path or URI strings into platform-correct
// absolute paths. The platform tag is injected so the quirk handling stays
// deterministic under test.
type pathResolver struct {
	platform platform.Platform
}

// resolve normalizes raw without touching the filesystem. A URI parse is
// attempted first, the native path form is the fallback.
func (r pathResolver) resolve(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", os.ErrInvalid
	}

	path := raw
	if u, err := url.Parse(raw); err == nil && u.Scheme == "file" && u.Path != "" {
		path = u.Path
	}

	path = platform.Normalize(path, r.platform)
	return filepath.Clean(filepath.FromSlash(path)), nil
}

// resolveForWrite resolves raw and ensures the parent directory chain of
// the result exists. The directory creation is a deliberate, observable
// side effect of output path resolution.
func (r pathResolver) resolveForWrite(raw string) (string, error) {
	path, err := r.resolve(raw)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	return path, nil
}
