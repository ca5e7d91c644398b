package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrWrite is returned when the output image cannot be written.
var ErrWrite = errors.New("cannot write output image")

// Write encodes img to path. The format follows the file extension: .png
// (default for unknown extensions) or .jpg/.jpeg. The file is written to a
// uniquely named temp file next to the destination and renamed into place,
// so a failed run never leaves a truncated image behind.
func Write(path string, img image.Image) error {
	tmp := fmt.Sprintf("%s.%s.tmp", path, uuid.NewString())

	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if err := encode(f, path, img); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	return nil
}

func encode(f *os.File, path string, img image.Image) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	default:
		return png.Encode(f, img)
	}
}
