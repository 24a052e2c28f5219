package frame

import (
	"errors"
	"fmt"
	"github.com/allape/mockframe/helper"
	"github.com/disintegration/imaging"
	"image"
	"image/color"
	"math"
)

var (
	ErrInvalidEdgeWidth = errors.New("edge width must be positive")
	ErrFrameTooSmall    = errors.New("frame too small for edge width")
	ErrInvalidSize      = errors.New("invalid artwork size")
	ErrMissingTile      = errors.New("missing tile")
	ErrDegenerateTile   = errors.New("degenerate tile")
)

// Tiles
// The 8 pieces cut from a frame template, all with bounds starting at (0,0).
type Tiles struct {
	TopLeft     *image.NRGBA
	TopEdge     *image.NRGBA
	TopRight    *image.NRGBA
	RightEdge   *image.NRGBA
	BottomRight *image.NRGBA
	BottomEdge  *image.NRGBA
	BottomLeft  *image.NRGBA
	LeftEdge    *image.NRGBA
}

// Names lists the tile names in clockwise order starting at the top left corner
var Names = []string{
	"top_left",
	"top_edge",
	"top_right",
	"right_edge",
	"bottom_right",
	"bottom_edge",
	"bottom_left",
	"left_edge",
}

// Each visits the tiles in the order of Names
func (t *Tiles) Each(fn func(name string, tile *image.NRGBA)) {
	fn("top_left", t.TopLeft)
	fn("top_edge", t.TopEdge)
	fn("top_right", t.TopRight)
	fn("right_edge", t.RightEdge)
	fn("bottom_right", t.BottomRight)
	fn("bottom_edge", t.BottomEdge)
	fn("bottom_left", t.BottomLeft)
	fn("left_edge", t.LeftEdge)
}

type Options struct {
	// ClipEdges
	// Cut the last tile of every edge run at the span end.
	// Without it the last tile may overdraw the following corner.
	ClipEdges bool
}

// Regions returns the crop rectangles of a w x h frame, keyed like Tiles.Each
func Regions(w, h, edgeWidth int) map[string]image.Rectangle {
	e := edgeWidth
	return map[string]image.Rectangle{
		"top_left":     image.Rect(0, 0, e, e),
		"top_edge":     image.Rect(e, 0, w-e, e),
		"top_right":    image.Rect(w-e, 0, w, e),
		"right_edge":   image.Rect(w-e, e, w, h-e),
		"bottom_right": image.Rect(w-e, h-e, w, h),
		"bottom_edge":  image.Rect(e, h-e, w-e, h),
		"bottom_left":  image.Rect(0, h-e, e, h),
		"left_edge":    image.Rect(0, e, e, h-e),
	}
}

func ValidateEdgeWidth(size image.Point, edgeWidth int) error {
	if edgeWidth <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidEdgeWidth, edgeWidth)
	}
	// same as 2*edgeWidth >= min(size.X, size.Y) without overflowing
	if edgeWidth > (min(size.X, size.Y)-1)/2 {
		return fmt.Errorf("%w: %dx%d needs to be larger than twice %d in both dimensions", ErrFrameTooSmall, size.X, size.Y, edgeWidth)
	}
	return nil
}

// Slice cuts the frame template into corners and edge strips of edgeWidth thickness
func Slice(img image.Image, edgeWidth int) (*Tiles, error) {
	bounds := img.Bounds()
	size := bounds.Size()

	err := ValidateEdgeWidth(size, edgeWidth)
	if err != nil {
		return nil, err
	}

	regions := Regions(size.X, size.Y, edgeWidth)
	crop := func(name string) *image.NRGBA {
		return imaging.Crop(img, regions[name].Add(bounds.Min))
	}

	return &Tiles{
		TopLeft:     crop("top_left"),
		TopEdge:     crop("top_edge"),
		TopRight:    crop("top_right"),
		RightEdge:   crop("right_edge"),
		BottomRight: crop("bottom_right"),
		BottomEdge:  crop("bottom_edge"),
		BottomLeft:  crop("bottom_left"),
		LeftEdge:    crop("left_edge"),
	}, nil
}

// Compose
// Builds a transparent frame of (size.X+2e)x(size.Y+2e) around an artwork of the given size.
// Corners are placed first, then edge tiles are repeated from e along every side,
// stepping by the top edge width horizontally and the left edge height vertically.
func Compose(size image.Point, tiles *Tiles, edgeWidth int, options *Options) (*image.NRGBA, error) {
	if options == nil {
		options = &Options{}
	}

	e := edgeWidth
	if e <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidEdgeWidth, e)
	}
	if size.X < 0 || size.Y < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, size.X, size.Y)
	}
	if e > (math.MaxInt-max(size.X, size.Y))/2 {
		return nil, fmt.Errorf("%w: %dx%d with edge width %d overflows the canvas", ErrInvalidSize, size.X, size.Y, e)
	}
	if tiles == nil {
		return nil, fmt.Errorf("%w: tiles are nil", ErrMissingTile)
	}

	var missing string
	tiles.Each(func(name string, tile *image.NRGBA) {
		if tile == nil && missing == "" {
			missing = name
		}
	})
	if missing != "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingTile, missing)
	}

	stepX := tiles.TopEdge.Bounds().Dx()
	stepY := tiles.LeftEdge.Bounds().Dy()
	if stepX <= 0 {
		return nil, fmt.Errorf("%w: top_edge has width %d", ErrDegenerateTile, stepX)
	} else if stepY <= 0 {
		return nil, fmt.Errorf("%w: left_edge has height %d", ErrDegenerateTile, stepY)
	}

	w := size.X + 2*e
	h := size.Y + 2*e

	canvas := imaging.New(w, h, color.NRGBA{})

	helper.Paste(canvas, tiles.TopLeft, image.Pt(0, 0))
	helper.Paste(canvas, tiles.TopRight, image.Pt(w-e, 0))
	helper.Paste(canvas, tiles.BottomLeft, image.Pt(0, h-e))
	helper.Paste(canvas, tiles.BottomRight, image.Pt(w-e, h-e))

	clip := canvas.Bounds()
	if options.ClipEdges {
		clip = image.Rect(e, 0, w-e, h)
	}
	for x := e; x < w-e; x += stepX {
		helper.PasteWithin(canvas, tiles.TopEdge, image.Pt(x, 0), clip)
		helper.PasteWithin(canvas, tiles.BottomEdge, image.Pt(x, h-e), clip)
	}

	if options.ClipEdges {
		clip = image.Rect(0, e, w, h-e)
	}
	for y := e; y < h-e; y += stepY {
		helper.PasteWithin(canvas, tiles.LeftEdge, image.Pt(0, y), clip)
		helper.PasteWithin(canvas, tiles.RightEdge, image.Pt(w-e, y), clip)
	}

	return canvas, nil
}
