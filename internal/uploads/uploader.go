// Package uploads persists request file attachments under a destination
// directory per upload kind and hands back the public URL clients use to
// fetch them.
package uploads

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"

	"github.com/eventhive/server/internal/helpers"
)

const (
	KindEventImage      = "event-images"
	KindEventStoryImage = "event-story-images"
	KindEventStoryVideo = "event-story-videos"
)

var ErrNoFile = fmt.Errorf("no file selected")

type Store struct {
	baseDir string
	domain  string
	cld     *cloudinary.Cloudinary
}

// NewStore prepares the destination directory tree. cld may be nil; when set,
// event images are stored on Cloudinary instead of the local disk.
func NewStore(baseDir, domain string, cld *cloudinary.Cloudinary) (*Store, error) {
	for _, kind := range []string{KindEventImage, KindEventStoryImage, KindEventStoryVideo} {
		if err := os.MkdirAll(filepath.Join(baseDir, kind), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory %s: %w", kind, err)
		}
	}
	return &Store{baseDir: baseDir, domain: domain, cld: cld}, nil
}

// Save writes the uploaded file under the kind's directory with a
// timestamp-suffixed name preserving the original extension, and returns the
// public URL. Partial files are not cleaned up on failure.
func (s *Store) Save(ctx context.Context, fh *multipart.FileHeader, kind string) (string, error) {
	if fh == nil {
		return "", ErrNoFile
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	if s.cld != nil && kind == KindEventImage {
		return helpers.UploadImage(ctx, s.cld, src, kind)
	}

	filename := uniqueFilename(fh.Filename)
	dstPath := filepath.Join(s.baseDir, kind, filename)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.domain + kind + "/" + filename, nil
}

// BaseDir is where the router mounts the static file groups.
func (s *Store) BaseDir() string {
	return s.baseDir
}

func uniqueFilename(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("img-%d%s", time.Now().UnixNano(), ext)
}
