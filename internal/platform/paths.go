package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"github.com/ytget/ytfetch/internal/common"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Characters rejected by at least one of the common filesystems, plus
// control characters.
var illegalFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Sanitize strips filesystem-illegal characters from a name and normalizes
// whitespace. Deterministic for the same input; may return "".
func Sanitize(name string) string {
	clean := illegalFilenameChars.ReplaceAllString(name, "")
	clean = whitespaceRun.ReplaceAllString(clean, " ")
	clean = strings.TrimSpace(clean)
	// Trailing dots confuse Windows; leading dots hide the file.
	clean = strings.Trim(clean, ".")
	return clean
}

// PathResolver derives destination path shapes for downloads. The filesystem
// is injected so directory creation is testable against a memory fs.
type PathResolver struct {
	fs afero.Fs
}

// NewPathResolver creates a resolver on the given filesystem.
func NewPathResolver(fs afero.Fs) *PathResolver {
	return &PathResolver{fs: fs}
}

// Resolve produces the destination path shape (directory + base name, no
// extension) for a download. An explicit name wins over the title; a title
// that sanitizes to nothing falls back to the media id. Ensuring the output
// directory exists is the one side effect here; failures wrap
// common.ErrFilesystem.
func (r *PathResolver) Resolve(outputDir, explicitName, title, mediaID string) (string, error) {
	base := Sanitize(explicitName)
	if base == "" {
		base = Sanitize(title)
	}
	if base == "" {
		base = mediaID
	}

	if err := r.fs.MkdirAll(outputDir, DefaultDirPermissions); err != nil {
		return "", fmt.Errorf("%w: create %s: %v", common.ErrFilesystem, outputDir, err)
	}

	return filepath.Join(outputDir, base), nil
}

// DefaultDownloadsDir returns the standard Downloads directory for the user.
func DefaultDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}
