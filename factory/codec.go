package factory

import (
	"fmt"
	"github.com/allape/gogger"
	"github.com/allape/mockframe/codec"
	"github.com/allape/mockframe/config"
	"github.com/disintegration/imaging"
	"image/png"
)

var l = gogger.New("mockframe.factory")

const (
	DefaultJPEGQuality = 75
	DefaultGIFColors   = 256
)

var pngCompressionLevels = map[string]png.CompressionLevel{
	"default": png.DefaultCompression,
	"none":    png.NoCompression,
	"fast":    png.BestSpeed,
	"best":    png.BestCompression,
}

func FormatFromConfig(out config.Output) (imaging.Format, error) {
	switch out.Format {
	case "", config.FormatAuto:
		format, err := imaging.FormatFromFilename(out.Path)
		if err != nil {
			return 0, fmt.Errorf("output format of %s: %w", out.Path, err)
		}
		return format, nil
	case config.FormatPNG:
		return imaging.PNG, nil
	case config.FormatJPEG:
		return imaging.JPEG, nil
	case config.FormatGIF:
		return imaging.GIF, nil
	case config.FormatBMP:
		return imaging.BMP, nil
	case config.FormatTIFF:
		return imaging.TIFF, nil
	default:
		return 0, fmt.Errorf("unknown output format: %s", out.Format)
	}
}

func EncoderFromConfig(out config.Output) (*codec.Encoder, error) {
	format, err := FormatFromConfig(out)
	if err != nil {
		return nil, err
	}

	encoder := &codec.Encoder{Format: format}

	switch format {
	case imaging.JPEG:
		quality, err := out.Ext.GetIntIn("quality", DefaultJPEGQuality, 1, 100)
		if err != nil {
			return nil, fmt.Errorf("jpeg: %w", err)
		}
		encoder.Options = append(encoder.Options, imaging.JPEGQuality(quality))
	case imaging.PNG:
		compression, err := out.Ext.GetOneOf("compression", "default", "none", "fast", "best")
		if err != nil {
			return nil, fmt.Errorf("png: %w", err)
		}
		encoder.Options = append(encoder.Options, imaging.PNGCompressionLevel(pngCompressionLevels[compression]))
	case imaging.GIF:
		colors, err := out.Ext.GetIntIn("colors", DefaultGIFColors, 1, 256)
		if err != nil {
			return nil, fmt.Errorf("gif: %w", err)
		}
		encoder.Options = append(encoder.Options, imaging.GIFNumColors(colors))
	}

	l.Verbose().Println("encoder for", out.Path, "is", format)

	return encoder, nil
}
