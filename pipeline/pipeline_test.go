package pipeline

import (
	"errors"
	"github.com/allape/mockframe/asset"
	"github.com/allape/mockframe/config"
	"github.com/allape/mockframe/frame"
	"github.com/disintegration/imaging"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

var (
	gold   = color.NRGBA{R: 200, G: 160, B: 40, A: 255}
	walnut = color.NRGBA{R: 90, G: 60, B: 30, A: 255}
	wall   = color.NRGBA{R: 230, G: 230, B: 220, A: 255}
	paint  = color.NRGBA{R: 20, G: 90, B: 160, A: 255}
)

// setup writes a gold cornered walnut frame, a wall and a painting into a temp dir
func setup(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()

	template := imaging.New(200, 200, walnut)
	for _, corner := range []image.Point{{0, 0}, {160, 0}, {0, 160}, {160, 160}} {
		template = imaging.Paste(template, imaging.New(40, 40, gold), corner)
	}

	files := map[string]image.Image{
		"back.png":  imaging.New(800, 600, wall),
		"frame.png": template,
		"art.png":   imaging.New(500, 300, paint),
	}
	for name, img := range files {
		err := imaging.Save(img, filepath.Join(dir, name))
		if err != nil {
			t.Fatal(err)
		}
	}

	conf := config.Default()
	conf.Assets = config.Assets{Background: "back.png", Frame: "frame.png", Artwork: "art.png"}
	conf.Resolve(dir)

	return conf
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func TestCompose(t *testing.T) {
	conf := setup(t)
	conf.Frame.ClipEdges = true

	err := Compose(conf)
	if err != nil {
		t.Fatal(err)
	}

	out, err := asset.Load(conf.Output.Path)
	if err != nil {
		t.Fatal(err)
	}

	if out.Bounds().Size() != image.Pt(580, 380) {
		t.Fatalf("Expected 580x380, got %v", out.Bounds().Size())
	}

	checks := map[image.Point]color.NRGBA{
		{0, 0}:     gold,
		{579, 0}:   gold,
		{545, 345}: gold,
		{300, 20}:  walnut,
		{20, 200}:  walnut,
		// transparent interior flattened to black
		{290, 190}: {A: 255},
	}
	for pt, expected := range checks {
		if c := out.NRGBAAt(pt.X, pt.Y); c != expected {
			t.Fatalf("Expected %v at %v, got %v", expected, pt, c)
		}
	}

	if exists(filepath.Join(filepath.Dir(conf.Output.Path), "mockup.png")) {
		t.Fatalf("Expected no mockup without mockup.path")
	}
}

func TestComposeMockup(t *testing.T) {
	conf := setup(t)
	conf.Mockup.Path = filepath.Join(filepath.Dir(conf.Output.Path), "mockup.png")

	err := Compose(conf)
	if err != nil {
		t.Fatal(err)
	}

	img, err := asset.Load(conf.Mockup.Path)
	if err != nil {
		t.Fatal(err)
	}

	if img.Bounds().Size() != image.Pt(800, 600) {
		t.Fatalf("Expected background size 800x600, got %v", img.Bounds().Size())
	}
	// framed artwork is 580x380 centered at (110,110)
	if c := img.NRGBAAt(400, 300); c != paint {
		t.Fatalf("Expected artwork at the center, got %v", c)
	}
	if c := img.NRGBAAt(115, 115); c != gold {
		t.Fatalf("Expected frame corner at (115,115), got %v", c)
	}
	if c := img.NRGBAAt(50, 50); c != wall {
		t.Fatalf("Expected wall at (50,50), got %v", c)
	}
}

func TestComposeMissingAsset(t *testing.T) {
	conf := setup(t)
	err := os.Remove(conf.Assets.Artwork)
	if err != nil {
		t.Fatal(err)
	}

	err = Compose(conf)
	if !errors.Is(err, asset.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if exists(conf.Output.Path) {
		t.Fatalf("Expected no output after a failure")
	}
}

func TestComposeDegenerateEdge(t *testing.T) {
	conf := setup(t)
	conf.Frame.EdgeWidth = 100

	err := Compose(conf)
	if !errors.Is(err, frame.ErrFrameTooSmall) {
		t.Fatalf("Expected ErrFrameTooSmall, got %v", err)
	}
	if exists(conf.Output.Path) {
		t.Fatalf("Expected no output after a failure")
	}
}

func TestGuide(t *testing.T) {
	conf := setup(t)

	err := Guide(conf)
	if !errors.Is(err, ErrGuideDisabled) {
		t.Fatalf("Expected ErrGuideDisabled, got %v", err)
	}

	conf.Guide.Path = filepath.Join(filepath.Dir(conf.Output.Path), "guide.jpg")
	err = Guide(conf)
	if err != nil {
		t.Fatal(err)
	}

	img, err := asset.Load(conf.Guide.Path)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Size() != image.Pt(200, 200) {
		t.Fatalf("Expected 200x200, got %v", img.Bounds().Size())
	}
}

func TestInspect(t *testing.T) {
	conf := setup(t)

	report, err := Inspect(conf)
	if err != nil {
		t.Fatal(err)
	}

	if len(report.Assets) != 3 || len(report.Tiles) != 8 {
		t.Fatalf("Expected 3 assets and 8 tiles, got %d and %d", len(report.Assets), len(report.Tiles))
	}
	if report.Assets[2].Name != "artwork" || report.Assets[2].Description != "500x300, NRGBA" {
		t.Fatalf("Unexpected artwork entry: %+v", report.Assets[2])
	}
	if report.Tiles[1].Name != "top_edge" || report.Tiles[1].Description != "120x40" {
		t.Fatalf("Unexpected top_edge entry: %+v", report.Tiles[1])
	}
	if report.Canvas != image.Pt(580, 380) {
		t.Fatalf("Expected 580x380, got %v", report.Canvas)
	}
}

func TestGuideEncoderOptions(t *testing.T) {
	conf := setup(t)
	conf.Output.Ext = `quality:"high"`
	conf.Guide.Path = filepath.Join(filepath.Dir(conf.Output.Path), "guide.jpg")

	err := Guide(conf)
	if err != nil {
		t.Fatalf("Expected output ext to be ignored by the guide, got %v", err)
	}

	conf.Guide.Ext = `quality:"0"`
	err = Guide(conf)
	if err == nil {
		t.Fatalf("Expected guide ext to be used")
	}
}

func TestComposeMockupEncoderOptions(t *testing.T) {
	conf := setup(t)
	conf.Output.Ext = `quality:"high"`
	conf.Mockup.Path = filepath.Join(filepath.Dir(conf.Output.Path), "mockup.jpg")
	conf.Mockup.Ext = `quality:"90"`

	err := Compose(conf)
	if err != nil {
		t.Fatalf("Expected output ext to be ignored by the mockup, got %v", err)
	}
	if !exists(conf.Mockup.Path) {
		t.Fatalf("Expected mockup at %s", conf.Mockup.Path)
	}

	err = os.Remove(conf.Output.Path)
	if err != nil {
		t.Fatal(err)
	}

	conf.Mockup.Ext = `quality:"101"`
	err = Compose(conf)
	if err == nil {
		t.Fatalf("Expected mockup ext to be used")
	}
	if exists(conf.Output.Path) {
		t.Fatalf("Expected no frame output when the mockup encoder is invalid")
	}
}

func TestComposeMockupWriteFailure(t *testing.T) {
	conf := setup(t)
	conf.Mockup.Path = filepath.Join(filepath.Dir(conf.Output.Path), "mockup.png")

	// a directory in the way makes the final rename fail
	err := os.Mkdir(conf.Mockup.Path, 0755)
	if err != nil {
		t.Fatal(err)
	}

	err = Compose(conf)
	if err == nil {
		t.Fatalf("Expected the mockup write to fail")
	}
	if !exists(conf.Output.Path) {
		t.Fatalf("Expected the frame output to stay in place")
	}
}
