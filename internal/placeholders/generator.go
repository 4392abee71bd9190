// Package placeholders draws and synthesizes stand-in assets so the game
// runs without third-party art or music.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
)

// ColorPalette defines the placeholder colors.
var ColorPalette = struct {
	Hero      color.RGBA
	HeroBoots color.RGBA
	Alien     color.RGBA
	AlienEye  color.RGBA
}{
	Hero:      color.RGBA{0, 200, 255, 255}, // Cyan suit
	HeroBoots: color.RGBA{60, 60, 80, 255},  // Dark slate
	Alien:     color.RGBA{80, 220, 60, 255}, // Alien green
	AlienEye:  color.RGBA{255, 255, 0, 255}, // Yellow
}

var transparent = color.RGBA{0, 0, 0, 0}

func clearImage(img *image.RGBA) {
	draw.Draw(img, img.Bounds(), &image.Uniform{transparent}, image.Point{}, draw.Src)
}

// CreateHeroFrame draws one walk-cycle frame of the hero. The stride
// alternates the feet so consecutive frames read as walking.
func CreateHeroFrame(size, frame int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	clearImage(img)

	bodyColor := ColorPalette.Hero
	outlineColor := Darken(bodyColor, 0.5)

	eighth := size / 8
	quarter := size / 4
	threeEighths := 3 * size / 8
	fiveEighths := 5 * size / 8
	threeQuarter := 3 * size / 4

	// Head
	for y := eighth; y < quarter+eighth; y++ {
		for x := threeEighths; x < fiveEighths; x++ {
			img.Set(x, y, bodyColor)
		}
	}

	// Body
	for y := quarter + eighth; y < threeQuarter; y++ {
		for x := quarter; x < threeQuarter; x++ {
			img.Set(x, y, bodyColor)
		}
	}
	for x := quarter; x < threeQuarter; x++ {
		img.Set(x, quarter+eighth, outlineColor) // Shoulders
	}

	// Feet: frames 1 and 3 step forward with opposite legs
	stride := 0
	switch frame % 4 {
	case 1:
		stride = -1
	case 3:
		stride = 1
	}
	for y := threeQuarter; y < size; y++ {
		img.Set(threeEighths+stride, y, ColorPalette.HeroBoots)
		img.Set(fiveEighths-1-stride, y, ColorPalette.HeroBoots)
	}

	return img
}

// CreateHeroSheet lays frames out left to right with margin transparent
// pixels between neighbours.
func CreateHeroSheet(size, margin, frames int) *image.RGBA {
	width := frames*size + (frames-1)*margin
	sheet := image.NewRGBA(image.Rect(0, 0, width, size))
	clearImage(sheet)

	for i := 0; i < frames; i++ {
		x := i * (size + margin)
		destRect := image.Rect(x, 0, x+size, size)
		draw.Draw(sheet, destRect, CreateHeroFrame(size, i), image.Point{}, draw.Src)
	}
	return sheet
}

// CreateAlienSprite draws the patrolling alien as an outlined diamond with eyes.
func CreateAlienSprite(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	clearImage(img)

	center := size / 2
	radius := size/2 - 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := abs(x-center) + abs(y-center)
			if d <= radius {
				img.Set(x, y, ColorPalette.Alien)
			} else if d <= radius+1 {
				img.Set(x, y, Darken(ColorPalette.Alien, 0.5))
			}
		}
	}

	eyeOffset := size / 8
	eyeY := center - size/16
	img.Set(center-eyeOffset, eyeY, ColorPalette.AlienEye)
	img.Set(center+eyeOffset, eyeY, ColorPalette.AlienEye)

	return img
}

// SavePNG saves an image to a PNG file, creating parent directories.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
