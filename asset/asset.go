package asset

import (
	"errors"
	"fmt"
	"github.com/allape/gogger"
	"github.com/allape/mockframe/config"
	"github.com/disintegration/imaging"
	"image"
	"image/color"
	"io/fs"
	"os"
	"strings"

	_ "golang.org/x/image/webp"
)

var l = gogger.New("mockframe.asset")

var ErrNotFound = errors.New("image not found")

type Assets struct {
	Background *image.NRGBA
	Frame      *image.NRGBA
	Artwork    *image.NRGBA
}

func (a *Assets) Each(fn func(name string, img *image.NRGBA)) {
	fn("background", a.Background)
	fn("frame", a.Frame)
	fn("artwork", a.Artwork)
}

// Load decodes the image at path into straight-alpha RGBA
func Load(path string) (*image.NRGBA, error) {
	_, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	l.Verbose().Println("loaded", path, Describe(img))

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Bounds().Min == (image.Point{}) {
		return nrgba, nil
	}

	return imaging.Clone(img), nil
}

func LoadAll(paths config.Assets) (*Assets, error) {
	background, err := Load(paths.Background)
	if err != nil {
		return nil, err
	}

	frame, err := Load(paths.Frame)
	if err != nil {
		return nil, err
	}

	artwork, err := Load(paths.Artwork)
	if err != nil {
		return nil, err
	}

	return &Assets{
		Background: background,
		Frame:      frame,
		Artwork:    artwork,
	}, nil
}

// Describe
// Example: 1920x1080, NRGBA
func Describe(img image.Image) string {
	size := img.Bounds().Size()
	return fmt.Sprintf("%dx%d, %s", size.X, size.Y, ModeName(img.ColorModel()))
}

func ModeName(model color.Model) string {
	switch model {
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA64"
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA64"
	case color.GrayModel:
		return "Gray"
	case color.Gray16Model:
		return "Gray16"
	case color.AlphaModel:
		return "Alpha"
	case color.Alpha16Model:
		return "Alpha16"
	case color.CMYKModel:
		return "CMYK"
	case color.YCbCrModel:
		return "YCbCr"
	case color.NYCbCrAModel:
		return "NYCbCrA"
	}

	if _, ok := model.(color.Palette); ok {
		return "Paletted"
	}

	return strings.TrimPrefix(fmt.Sprintf("%T", model), "*")
}
