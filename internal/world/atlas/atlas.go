// Package atlas slices sprite sheets into individual frames.
package atlas

import (
	"fmt"
	"image"

	"chosenoffset.com/alienpatrol/internal/render"
)

// Sheet is a sprite sheet laid out as a grid of equally sized tiles
// separated by a fixed margin.
type Sheet struct {
	Image      render.Image
	TileWidth  int // Width of each tile in pixels
	TileHeight int // Height of each tile in pixels
	Margin     int // Gap between neighbouring tiles in pixels
}

// NewSheet wraps an image as a sprite sheet.
func NewSheet(img render.Image, tileWidth, tileHeight, margin int) (*Sheet, error) {
	if img == nil {
		return nil, fmt.Errorf("sheet image is nil")
	}
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("invalid tile dimensions: %dx%d", tileWidth, tileHeight)
	}
	if margin < 0 {
		return nil, fmt.Errorf("invalid margin: %d", margin)
	}
	return &Sheet{
		Image:      img,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Margin:     margin,
	}, nil
}

// TileRect returns the pixel rectangle of the tile at (col, row).
func (s *Sheet) TileRect(col, row int) image.Rectangle {
	x := col * (s.TileWidth + s.Margin)
	y := row * (s.TileHeight + s.Margin)
	return image.Rect(x, y, x+s.TileWidth, y+s.TileHeight)
}

// Frame returns the sub-image for the tile at (col, row).
func (s *Sheet) Frame(col, row int) (render.Image, error) {
	if col < 0 || row < 0 {
		return nil, fmt.Errorf("tile (%d, %d) out of range", col, row)
	}
	rect := s.TileRect(col, row)
	if !rect.In(s.Image.Bounds()) {
		return nil, fmt.Errorf("tile (%d, %d) at %v lies outside sheet bounds %v", col, row, rect, s.Image.Bounds())
	}
	return s.Image.SubImage(rect), nil
}

// Strip returns count consecutive frames from the start of a row, in order.
func (s *Sheet) Strip(row, count int) ([]render.Image, error) {
	if count <= 0 {
		return nil, fmt.Errorf("frame count must be positive, got %d", count)
	}
	frames := make([]render.Image, 0, count)
	for col := 0; col < count; col++ {
		frame, err := s.Frame(col, row)
		if err != nil {
			return nil, fmt.Errorf("failed to slice frame %d of row %d: %w", col, row, err)
		}
		frames = append(frames, frame)
	}
	return frames, nil
}
