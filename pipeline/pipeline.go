package pipeline

import (
	"errors"
	"fmt"
	"github.com/allape/gogger"
	"github.com/allape/mockframe/asset"
	"github.com/allape/mockframe/codec"
	"github.com/allape/mockframe/config"
	"github.com/allape/mockframe/factory"
	"github.com/allape/mockframe/frame"
	"github.com/allape/mockframe/guide"
	"github.com/allape/mockframe/helper"
	"github.com/allape/mockframe/mockup"
	"image"
)

var l = gogger.New("mockframe.pipeline")

var ErrGuideDisabled = errors.New("guide path is not configured")

// Compose
// Builds the frame for the artwork and writes it flattened to conf.Output.Path,
// plus the mockup when conf.Mockup.Path is set.
// Nothing is written unless every image and encoder has been built.
// The frame is written first, so a failure while writing the mockup leaves the frame output in place.
func Compose(conf config.Config) error {
	assets, err := asset.LoadAll(conf.Assets)
	if err != nil {
		return err
	}

	e := conf.Frame.EdgeWidth

	tiles, err := frame.Slice(assets.Frame, e)
	if err != nil {
		return err
	}

	framed, err := frame.Compose(assets.Artwork.Bounds().Size(), tiles, e, &frame.Options{
		ClipEdges: conf.Frame.ClipEdges,
	})
	if err != nil {
		return err
	}

	encoder, err := factory.EncoderFromConfig(conf.Output)
	if err != nil {
		return err
	}

	var mockupImage image.Image
	var mockupEncoder *codec.Encoder
	if conf.Mockup.Path != "" {
		mockupEncoder, err = factory.EncoderFromConfig(derivedOutput(conf.Mockup.Path, conf.Mockup.Ext))
		if err != nil {
			return err
		}
		mockupImage = helper.Flatten(mockup.Place(
			assets.Background,
			mockup.Frame(assets.Artwork, framed, e),
			&mockup.Options{Fit: conf.Mockup.Fit, Margin: conf.Mockup.Margin},
		))
	}

	err = encoder.WriteFile(conf.Output.Path, helper.Flatten(framed))
	if err != nil {
		return err
	}
	l.Info().Println("frame image saved to", conf.Output.Path)

	if mockupImage != nil {
		err = mockupEncoder.WriteFile(conf.Mockup.Path, mockupImage)
		if err != nil {
			return err
		}
		l.Info().Println("mockup image saved to", conf.Mockup.Path)
	}

	return nil
}

// Guide writes the frame template with its slice regions outlined to conf.Guide.Path
func Guide(conf config.Config) error {
	if conf.Guide.Path == "" {
		return ErrGuideDisabled
	}

	template, err := asset.Load(conf.Assets.Frame)
	if err != nil {
		return err
	}

	img, err := guide.Render(template, conf.Frame.EdgeWidth, &guide.Options{
		LineWidth: conf.Guide.LineWidth,
		FontSize:  conf.Guide.FontSize,
	})
	if err != nil {
		return err
	}

	encoder, err := factory.EncoderFromConfig(derivedOutput(conf.Guide.Path, conf.Guide.Ext))
	if err != nil {
		return err
	}

	err = encoder.WriteFile(conf.Guide.Path, img)
	if err != nil {
		return err
	}
	l.Info().Println("guide image saved to", conf.Guide.Path)

	return nil
}

type Entry struct {
	Name string
	Size image.Point
	// Description is "WxH, MODE" for assets and "WxH" for tiles
	Description string
}

type Report struct {
	Assets []Entry
	Tiles  []Entry
	Canvas image.Point
}

// Inspect loads the assets and reports what Compose would do with them
func Inspect(conf config.Config) (*Report, error) {
	assets, err := asset.LoadAll(conf.Assets)
	if err != nil {
		return nil, err
	}

	report := &Report{}

	assets.Each(func(name string, img *image.NRGBA) {
		entry := Entry{Name: name, Size: img.Bounds().Size(), Description: asset.Describe(img)}
		report.Assets = append(report.Assets, entry)
		l.Verbose().Println(entry.Name+":", entry.Description)
	})

	e := conf.Frame.EdgeWidth

	tiles, err := frame.Slice(assets.Frame, e)
	if err != nil {
		return report, err
	}

	tiles.Each(func(name string, tile *image.NRGBA) {
		size := tile.Bounds().Size()
		entry := Entry{Name: name, Size: size, Description: fmt.Sprintf("%dx%d", size.X, size.Y)}
		report.Tiles = append(report.Tiles, entry)
		l.Verbose().Println(entry.Name+":", entry.Description)
	})

	report.Canvas = assets.Artwork.Bounds().Size().Add(image.Pt(2*e, 2*e))
	l.Verbose().Println("canvas:", fmt.Sprintf("%dx%d", report.Canvas.X, report.Canvas.Y))

	return report, nil
}

// derivedOutput picks the format from the file extension, ext is not shared with the main output
func derivedOutput(path string, ext config.TagString) config.Output {
	return config.Output{
		Path:   path,
		Format: config.FormatAuto,
		Ext:    ext,
	}
}
