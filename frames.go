package main

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"sort"
)

var (
	ErrMissingSource = errors.New("asset folder does not exist")
	ErrEmptyFrameSet = errors.New("no square PNGs found")
)

// IconFrame is one resolution variant destined for the ICO container.
// Data holds the raw PNG stream of the source file, embedded verbatim.
type IconFrame struct {
	Width    int
	Height   int
	BitCount int // 32 when the source carries an alpha channel, else 24
	Data     []byte
}

// collectFrames scans dir for square PNGs and returns one frame per
// resolution, sorted ascending by width. Files are visited in filename
// order; when two files share a resolution the later one wins, and the
// replacement is logged so the winner is observable.
func collectFrames(dir string) ([]IconFrame, error) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMissingSource, dir)
	}

	// Glob returns matches in sorted order, which keeps dedup deterministic.
	paths, err := filepath.Glob(filepath.Join(dir, "*.png"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	type resolution struct{ w, h int }
	sizeMap := make(map[resolution]IconFrame)
	winners := make(map[resolution]string)

	for _, path := range paths {
		name := filepath.Base(path)

		data, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Skipping unreadable asset %s: %v", name, err)
			continue
		}
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			log.Printf("Skipping undecodable asset %s: %v", name, err)
			continue
		}

		if cfg.Width != cfg.Height {
			log.Printf("Skipping non-square asset %s (%dx%d)", name, cfg.Width, cfg.Height)
			continue
		}

		bitCount := 24
		if hasAlphaChannel(cfg.ColorModel) {
			bitCount = 32
		}

		key := resolution{cfg.Width, cfg.Height}
		if prev, ok := winners[key]; ok {
			log.Printf("Replacing %dx%d frame %s with %s", cfg.Width, cfg.Height, prev, name)
		}
		winners[key] = name
		sizeMap[key] = IconFrame{
			Width:    cfg.Width,
			Height:   cfg.Height,
			BitCount: bitCount,
			Data:     data,
		}
	}

	if len(sizeMap) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrEmptyFrameSet, dir)
	}

	frames := make([]IconFrame, 0, len(sizeMap))
	for _, frame := range sizeMap {
		frames = append(frames, frame)
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].Width < frames[j].Width })
	return frames, nil
}

// hasAlphaChannel reports whether the decoded color model carries an alpha
// channel. The PNG decoder reports plain truecolor as RGBA and
// truecolor-with-alpha as NRGBA; paletted images count when any palette
// entry is not fully opaque.
func hasAlphaChannel(m color.Model) bool {
	switch m {
	case color.NRGBAModel, color.NRGBA64Model, color.AlphaModel, color.Alpha16Model:
		return true
	}
	if p, ok := m.(color.Palette); ok {
		for _, c := range p {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return true
			}
		}
	}
	return false
}
