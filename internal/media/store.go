package media

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// postsDir is the subdirectory of the media root that holds post images.
const postsDir = "posts"

// Store writes uploaded files below a media root on the local filesystem.
type Store struct {
	root string
}

func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(root, postsDir), 0o755); err != nil {
		return nil, fmt.Errorf("create media root failed: %w", err)
	}
	return &Store{root: root}, nil
}

func (s *Store) Root() string {
	return s.root
}

// SavePostImage stores an uploaded image and returns its media-relative path,
// e.g. "posts/small.gif". The original filename is kept; when it is already
// taken a short random suffix is inserted before the extension.
func (s *Store) SavePostImage(filename string, src io.Reader) (string, error) {
	name := sanitize(filename)
	if name == "" {
		return "", fmt.Errorf("empty upload filename")
	}

	target := filepath.Join(s.root, postsDir, name)
	if _, err := os.Stat(target); err == nil {
		name = withSuffix(name)
		target = filepath.Join(s.root, postsDir, name)
	}

	dst, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create media file failed: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write media file failed: %w", err)
	}
	return path.Join(postsDir, name), nil
}

// sanitize strips any directory components a client may have sent.
func sanitize(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return name
}

func withSuffix(name string) string {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	return fmt.Sprintf("%s-%s%s", stem, uuid.NewString()[:8], ext)
}
