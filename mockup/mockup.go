package mockup

import (
	"github.com/allape/mockframe/helper"
	"github.com/disintegration/imaging"
	"image"
)

type Options struct {
	// Fit shrinks the framed artwork to fit inside the background minus Margin on every side
	Fit    bool
	Margin int
}

// Frame puts the artwork into the opening of a frame composed for it
func Frame(artwork image.Image, framed *image.NRGBA, edgeWidth int) *image.NRGBA {
	out := imaging.Clone(framed)

	art, ok := artwork.(*image.NRGBA)
	if !ok {
		art = imaging.Clone(artwork)
	}
	helper.Paste(out, art, image.Pt(edgeWidth, edgeWidth))

	return out
}

// Place centers framed on a copy of background, blending by alpha
func Place(background, framed image.Image, options *Options) *image.NRGBA {
	if options == nil {
		options = &Options{}
	}

	bg := imaging.Clone(background)
	bgSize := bg.Bounds().Size()

	if options.Fit {
		maxW := bgSize.X - 2*options.Margin
		maxH := bgSize.Y - 2*options.Margin
		if maxW > 0 && maxH > 0 {
			framed = imaging.Fit(framed, maxW, maxH, imaging.Lanczos)
		}
	}

	size := framed.Bounds().Size()
	pt := image.Pt((bgSize.X-size.X)/2, (bgSize.Y-size.Y)/2)

	return imaging.Overlay(bg, framed, pt, 1)
}
