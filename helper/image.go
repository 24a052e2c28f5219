package helper

import (
	"image"
	"image/color"
)

// Paste copies src onto dst with its top-left corner at pt.
// Pixels are replaced, not blended. Whatever falls outside dst is dropped.
func Paste(dst, src *image.NRGBA, pt image.Point) {
	PasteWithin(dst, src, pt, dst.Bounds())
}

// PasteWithin is Paste with the written area limited to clip
func PasteWithin(dst, src *image.NRGBA, pt image.Point, clip image.Rectangle) {
	srcBounds := src.Bounds()
	target := srcBounds.Sub(srcBounds.Min).Add(pt).Intersect(clip).Intersect(dst.Bounds())
	if target.Empty() {
		return
	}

	rowSize := target.Dx() * 4
	for y := target.Min.Y; y < target.Max.Y; y++ {
		sx := srcBounds.Min.X + target.Min.X - pt.X
		sy := srcBounds.Min.Y + y - pt.Y
		si := src.PixOffset(sx, sy)
		di := dst.PixOffset(target.Min.X, y)
		copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
	}
}

// Flatten drops the alpha channel and keeps the straight RGB values
func Flatten(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	if nrgba, ok := img.(*image.NRGBA); ok {
		rowSize := bounds.Dx() * 4
		for y := 0; y < bounds.Dy(); y++ {
			si := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			di := out.PixOffset(0, y)
			copy(out.Pix[di:di+rowSize], nrgba.Pix[si:si+rowSize])
			for i := di + 3; i < di+rowSize; i += 4 {
				out.Pix[i] = 0xff
			}
		}
		return out
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}

	return out
}

func ImageEqual(img1, img2 image.Image) bool {
	b1, b2 := img1.Bounds(), img2.Bounds()
	if b1.Size() != b2.Size() {
		return false
	}

	for y := 0; y < b1.Dy(); y++ {
		for x := 0; x < b1.Dx(); x++ {
			r1, g1, bl1, a1 := img1.At(b1.Min.X+x, b1.Min.Y+y).RGBA()
			r2, g2, bl2, a2 := img2.At(b2.Min.X+x, b2.Min.Y+y).RGBA()
			if r1 != r2 || g1 != g2 || bl1 != bl2 || a1 != a2 {
				return false
			}
		}
	}

	return true
}
