// Package assets loads the sprite images the game draws.
//
// Images are decoded into plain image.Image values so both frontends can use
// them: the window frontend uploads them to the GPU, the terminal frontend
// downsamples them into character cells.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"os"
	"path/filepath"

	"github.com/vovakirdan/uju/internal/config"
)

// Sprites holds the decoded game images.
type Sprites struct {
	Rocket image.Image
	Fire   image.Image // Sprite sheet sliced by Frames
}

// Load reads the rocket sprite and fire atlas. dir overrides cfg.Dir when
// non-empty. Any failure is fatal for the caller: the game does not run
// with missing textures.
func Load(dir string, cfg config.AssetsConfig) (*Sprites, error) {
	if dir == "" {
		dir = cfg.Dir
	}

	rocket, err := loadImage(filepath.Join(dir, cfg.Rocket))
	if err != nil {
		return nil, err
	}
	fire, err := loadImage(filepath.Join(dir, cfg.Fire))
	if err != nil {
		return nil, err
	}

	return &Sprites{Rocket: rocket, Fire: fire}, nil
}

// loadImage decodes a single image file.
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode asset %s: %w", path, err)
	}
	return img, nil
}

// ErrNotSliceable is returned by Frames for images without SubImage.
var ErrNotSliceable = errors.New("assets: image does not support sub-images")

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Frames slices an atlas into a cols x rows grid and returns the cells in
// [atlas.Start, atlas.End), in row-major order. The returned index i holds
// cell atlas.Start+i.
func Frames(img image.Image, atlas config.AtlasConfig) ([]image.Image, error) {
	src, ok := img.(subImager)
	if !ok {
		return nil, ErrNotSliceable
	}
	if atlas.Cols <= 0 || atlas.Rows <= 0 {
		return nil, fmt.Errorf("assets: invalid atlas grid %dx%d", atlas.Cols, atlas.Rows)
	}

	b := img.Bounds()
	cellW := b.Dx() / atlas.Cols
	cellH := b.Dy() / atlas.Rows

	frames := make([]image.Image, 0, atlas.End-atlas.Start)
	for i := atlas.Start; i < atlas.End; i++ {
		col := i % atlas.Cols
		row := i / atlas.Cols
		min := image.Pt(b.Min.X+col*cellW, b.Min.Y+row*cellH)
		frames = append(frames, src.SubImage(image.Rectangle{Min: min, Max: min.Add(image.Pt(cellW, cellH))}))
	}
	return frames, nil
}
