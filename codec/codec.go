package codec

import (
	"errors"
	"github.com/allape/gogger"
	"github.com/disintegration/imaging"
	"image"
	"io"
	"os"
	"path/filepath"
)

var l = gogger.New("mockframe.codec")

type Codec interface {
	Encode(w io.Writer, img image.Image) error
	WriteFile(path string, img image.Image) error
}

type Encoder struct {
	Format  imaging.Format
	Options []imaging.EncodeOption
}

var _ Codec = (*Encoder)(nil)

func (e *Encoder) Encode(w io.Writer, img image.Image) error {
	err := Validate(img)
	if err != nil {
		return err
	}
	return imaging.Encode(w, img, e.Format, e.Options...)
}

// DefaultFileMode is used for new files, an existing file keeps its own mode
const DefaultFileMode os.FileMode = 0644

// WriteFile
// Encodes into a temporary file next to path and renames it over path,
// so path is either fully written or left as it was.
func (e *Encoder) WriteFile(path string, img image.Image) (err error) {
	dir := filepath.Dir(path)

	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	mode := DefaultFileMode
	if stat, statErr := os.Stat(path); statErr == nil && stat.Mode().IsRegular() {
		mode = stat.Mode().Perm()
	}

	err = tmp.Chmod(mode)
	if err != nil {
		_ = tmp.Close()
		return err
	}

	err = e.Encode(tmp, img)
	if err != nil {
		_ = tmp.Close()
		return err
	}

	err = tmp.Close()
	if err != nil {
		return err
	}

	err = os.Rename(tmp.Name(), path)
	if err != nil {
		return err
	}

	l.Verbose().Println("wrote", path, "as", e.Format)

	return nil
}

var ErrEmptyImage = errors.New("image is empty")

// Validate rejects images no encoder can write
func Validate(img image.Image) error {
	if img == nil || img.Bounds().Empty() {
		return ErrEmptyImage
	}
	return nil
}
