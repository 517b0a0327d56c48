package photos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/vacations/internal/entity"
)

var allowedExt = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".webp": {},
}

// File is a stored photo.
type File struct {
	Name    string
	ModTime time.Time
}

// Store keeps vacation photos in a local directory under generated names.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	return &Store{dir: dir}, nil
}

func (s *Store) Dir() string {
	return s.dir
}

// Save copies r into a new file named <uuid><ext> and returns that name.
// Only the extension of originalName is kept.
func (s *Store) Save(ctx context.Context, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if _, ok := allowedExt[ext]; !ok {
		return "", fmt.Errorf("%w: unsupported photo type %q", entity.ErrInvalidInput, ext)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.Must(uuid.NewV4()).String() + ext

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create photo: %w", err)
	}

	_, err = io.Copy(f, r)
	if err != nil {
		f.Close()
		os.Remove(f.Name())

		return "", fmt.Errorf("write photo: %w", err)
	}

	err = f.Close()
	if err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("close photo: %w", err)
	}

	return name, nil
}

// Remove deletes a stored photo. A missing file is not an error.
func (s *Store) Remove(name string) error {
	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("%w: bad photo name %q", entity.ErrInvalidInput, name)
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

func (s *Store) List() ([]File, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	files := make([]File, 0, len(entries))

	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}

		info, err := e.Info()
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}

			return nil, err
		}

		files = append(files, File{Name: e.Name(), ModTime: info.ModTime()})
	}

	return files, nil
}
