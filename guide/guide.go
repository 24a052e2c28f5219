package guide

import (
	"github.com/allape/mockframe/frame"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"image"
	"image/color"
	"strings"
)

var Font *truetype.Font

var (
	CornerColor = color.NRGBA{R: 255, G: 64, B: 64, A: 255}
	EdgeColor   = color.NRGBA{R: 0, G: 200, B: 255, A: 255}
)

type Options struct {
	LineWidth float64
	FontSize  float64
}

// Render
// Outlines the 8 slice regions of edgeWidth over a copy of the frame template and labels each one.
func Render(template image.Image, edgeWidth int, options *Options) (image.Image, error) {
	opts := Options{}
	if options != nil {
		opts = *options
	}
	options = &opts
	if options.LineWidth <= 0 {
		options.LineWidth = 2
	}
	if options.FontSize <= 0 {
		options.FontSize = 14
	}

	bounds := template.Bounds()
	size := bounds.Size()

	err := frame.ValidateEdgeWidth(size, edgeWidth)
	if err != nil {
		return nil, err
	}

	if Font == nil {
		Font, err = truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, err
		}
	}

	dc := gg.NewContext(size.X, size.Y)
	dc.DrawImage(template, -bounds.Min.X, -bounds.Min.Y)
	dc.SetFontFace(truetype.NewFace(Font, &truetype.Options{Size: options.FontSize}))
	dc.SetLineWidth(options.LineWidth)

	inset := options.LineWidth / 2
	regions := frame.Regions(size.X, size.Y, edgeWidth)

	for _, name := range frame.Names {
		r := regions[name]

		if strings.HasSuffix(name, "_edge") {
			dc.SetColor(EdgeColor)
		} else {
			dc.SetColor(CornerColor)
		}

		dc.DrawRectangle(
			float64(r.Min.X)+inset,
			float64(r.Min.Y)+inset,
			float64(r.Dx())-options.LineWidth,
			float64(r.Dy())-options.LineWidth,
		)
		dc.Stroke()

		center := r.Min.Add(r.Max).Div(2)
		dc.DrawStringAnchored(name, float64(center.X), float64(center.Y), 0.5, 0.5)
	}

	return dc.Image(), nil
}
