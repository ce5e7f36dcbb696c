package main

import (
	"fmt"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// testFontFace loads the embedded Go Bold font at the given size.
func testFontFace(size float64) (font.Face, error) {
	font, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// writeFixturePNG renders a w x h test frame labeled with its width and
// writes it to dir/name, returning the path. withAlpha keeps a transparent
// background, which makes the PNG encoder emit truecolor-with-alpha; a
// fully opaque frame comes out as plain truecolor.
func writeFixturePNG(t *testing.T, dir, name string, w, h int, withAlpha bool) string {
	t.Helper()

	dc := gg.NewContext(w, h)
	fill := color.RGBA{40, 167, 69, 255}
	if withAlpha {
		dc.SetColor(color.RGBA{0, 0, 0, 0})
		dc.Clear()
		dc.SetColor(fill)
		dc.DrawCircle(float64(w)/2, float64(h)/2, float64(min(w, h))/2-1)
		dc.Fill()
	} else {
		dc.SetColor(fill)
		dc.Clear()
	}

	if face, err := testFontFace(float64(h) / 3); err == nil {
		dc.SetFontFace(face)
		label := fmt.Sprintf("%d", w)
		lw, lh := dc.MeasureString(label)
		dc.SetColor(color.RGBA{255, 255, 255, 255})
		dc.DrawString(label, float64(w)/2-lw/2, float64(h)/2+lh/2)
	}

	path := filepath.Join(dir, name)
	if err := dc.SavePNG(path); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}
