package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	errdefs "portfolioservice/internal/errors"
)

// LocalStore keeps attachments as files in a single upload directory.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: abs}, nil
}

func (s *LocalStore) Save(ctx context.Context, r io.Reader, originalName string) (string, error) {
	ref, err := newRef(originalName)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name, _ := objectName(ref)
	target := filepath.Join(s.dir, name)

	f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		return "", fmt.Errorf("create attachment: %v: %w", err, errdefs.ErrDependency)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(target)
		return "", fmt.Errorf("write attachment: %v: %w", err, errdefs.ErrDependency)
	}
	if err := f.Close(); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("close attachment: %v: %w", err, errdefs.ErrDependency)
	}
	return ref, nil
}

func (s *LocalStore) Read(ctx context.Context, ref string) ([]byte, error) {
	name, err := objectName(ref)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("attachment %s: %w", ref, errdefs.ErrNotFound)
		}
		return nil, fmt.Errorf("read attachment %s: %v: %w", ref, err, errdefs.ErrDependency)
	}
	return data, nil
}

func (s *LocalStore) Delete(_ context.Context, ref string) error {
	name, err := objectName(ref)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete attachment %s: %v: %w", ref, err, errdefs.ErrDependency)
	}
	return nil
}

func (s *LocalStore) List(ctx context.Context) ([]Object, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list attachments: %v: %w", err, errdefs.ErrDependency)
	}
	objects := make([]Object, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		objects = append(objects, Object{Ref: RefPrefix + entry.Name(), ModTime: info.ModTime()})
	}
	return objects, nil
}
