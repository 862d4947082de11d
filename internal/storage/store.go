package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	errdefs "portfolioservice/internal/errors"
)

// RefPrefix is the stable prefix of every attachment reference.
const RefPrefix = "uploads/"

// Object is a stored blob as seen by the orphan sweeper.
type Object struct {
	Ref     string
	ModTime time.Time
}

type Store interface {
	Save(ctx context.Context, r io.Reader, originalName string) (string, error)
	Read(ctx context.Context, ref string) ([]byte, error)
	Delete(ctx context.Context, ref string) error
	List(ctx context.Context) ([]Object, error)
}

var allowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
	".bmp": true, ".tif": true, ".tiff": true, ".heic": true,
	".pdf": true, ".doc": true, ".docx": true, ".txt": true,
}

// ValidateName rejects uploads whose extension is not accepted as evidence.
func ValidateName(originalName string) error {
	extension := strings.ToLower(path.Ext(originalName))
	if extension == "" {
		return fmt.Errorf("file %q has no extension: %w", originalName, errdefs.ErrValidation)
	}
	if !allowedExtensions[extension] {
		return fmt.Errorf("file extension %s not allowed: %w", extension, errdefs.ErrValidation)
	}
	return nil
}

func newRef(originalName string) (string, error) {
	if err := ValidateName(originalName); err != nil {
		return "", err
	}
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate attachment id: %w", err)
	}
	return RefPrefix + id.String() + strings.ToLower(path.Ext(originalName)), nil
}

// objectName maps a reference to the blob name inside the store. Only the
// final path element is used, so absolute paths written by older clients
// resolve too and traversal outside the store is impossible.
func objectName(ref string) (string, error) {
	name := path.Base(strings.ReplaceAll(ref, "\\", "/"))
	if name == "" || name == "." || name == ".." || name == "/" {
		return "", fmt.Errorf("invalid attachment reference %q: %w", ref, errdefs.ErrNotFound)
	}
	return name, nil
}
