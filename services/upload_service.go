package services

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrBadImageType = errors.New("unsupported image type")
	ErrImageTooBig  = errors.New("image exceeds the size limit")
	ErrBadFilename  = errors.New("invalid filename")
)

// MaxImageSize caps a single uploaded image.
const MaxImageSize = 5 << 20 // 5 MiB

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadService stores hotel images on local disk under Dir. Stored names
// are random so uploads can never collide or overwrite each other.
type UploadService struct {
	Dir string
}

func NewUploadService(dir string) *UploadService {
	return &UploadService{Dir: dir}
}

func (s *UploadService) checkExt(original string) (string, error) {
	ext := strings.ToLower(filepath.Ext(original))
	if !allowedImageExts[ext] {
		return "", ErrBadImageType
	}
	return ext, nil
}

// Save writes one image to disk and returns its stored filename.
func (s *UploadService) Save(src io.Reader, original string, size int64) (string, error) {
	ext, err := s.checkExt(original)
	if err != nil {
		return "", err
	}
	if size > MaxImageSize {
		return "", ErrImageTooBig
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir upload dir: %w", err)
	}

	filename := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.Dir, filename))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, MaxImageSize+1)); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}
	return filename, nil
}

// Remove deletes a stored image. Removing a file that is already gone is
// not an error. Filenames carrying path separators are refused outright.
func (s *UploadService) Remove(filename string) error {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return ErrBadFilename
	}
	err := os.Remove(filepath.Join(s.Dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// URLFor maps a stored filename to its public path.
func (s *UploadService) URLFor(filename string) string {
	return "/uploads/" + filename
}
