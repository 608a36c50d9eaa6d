package vibrant

import (
	"fmt"
	"image"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/wbrown/vibrant/imageutil"
)

// Swatch sheet geometry, in pixels.
const (
	SheetTileWidth  = 160
	SheetTileHeight = 120
	SheetStripH     = 48
	sheetFontSize   = 14
	sheetMargin     = 8
	checkerSize     = 10
)

var (
	checkerLight = imageutil.RGB{R: 220, G: 220, B: 220}
	checkerDark  = imageutil.RGB{R: 180, G: 180, B: 180}
	textBlack    = image.Black
	textWhite    = image.White
)

// RenderSheet draws one labelled tile per swatch slot in claim order,
// followed by a strip of the palette with each color's width proportional
// to its population. Empty slots are drawn as a gray checkerboard marked
// "none".
func RenderSheet(v Vibrancy, p Palette) (*imageutil.RGBAImage, error) {
	ttf, err := freetype.ParseFont(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	slots := v.Slots()
	width := SheetTileWidth * len(slots)
	sheet := imageutil.NewRGBAImage(width, SheetTileHeight+SheetStripH)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(sheetFontSize)
	ctx.SetClip(sheet.Bounds())
	ctx.SetDst(sheet.RGBA)
	ctx.SetHinting(font.HintingFull)

	lineHeight := lineHeightOf(ttf)
	for i, slot := range slots {
		tile := image.Rect(i*SheetTileWidth, 0, (i+1)*SheetTileWidth, SheetTileHeight)

		value := "none"
		lightness := 1.0
		if slot.Color != nil {
			c := *slot.Color
			sheet.FillRect(tile, imageutil.RGB{R: c.R, G: c.G, B: c.B})
			value = c.Hex()
			lightness = c.HSL().L
		} else {
			drawChecker(sheet, tile)
		}

		ctx.SetSrc(textBlack)
		if lightness < 0.5 {
			ctx.SetSrc(textWhite)
		}
		x := tile.Min.X + sheetMargin
		y := tile.Max.Y - sheetMargin - lineHeight
		for _, line := range []string{slot.Name, value} {
			if _, err := ctx.DrawString(line, freetype.Pt(x, y)); err != nil {
				return nil, fmt.Errorf("failed to draw label: %w", err)
			}
			y += lineHeight
		}
	}

	if len(p.Colors) > 0 {
		x := 0
		for i, w := range p.blockWidths(width) {
			c := p.Colors[i]
			strip := image.Rect(x, SheetTileHeight, x+w, SheetTileHeight+SheetStripH)
			sheet.FillRect(strip, imageutil.RGB{R: c.R, G: c.G, B: c.B})
			x += w
		}
	} else {
		drawChecker(sheet, image.Rect(0, SheetTileHeight, width, SheetTileHeight+SheetStripH))
	}

	return sheet, nil
}

// SaveSheet renders the swatch sheet and writes it to path as PNG.
func SaveSheet(v Vibrancy, p Palette, path string) error {
	sheet, err := RenderSheet(v, p)
	if err != nil {
		return err
	}
	return imageutil.SavePNG(sheet.RGBA, path)
}

// lineHeightOf returns the line height of ttf at the sheet font size in
// whole pixels.
func lineHeightOf(ttf *truetype.Font) int {
	face := truetype.NewFace(ttf, &truetype.Options{
		Size: sheetFontSize,
		DPI:  72,
	})
	defer face.Close()
	return face.Metrics().Height.Ceil()
}

func drawChecker(img *imageutil.RGBAImage, r image.Rectangle) {
	for y := r.Min.Y; y < r.Max.Y; y += checkerSize {
		for x := r.Min.X; x < r.Max.X; x += checkerSize {
			c := checkerLight
			if ((x-r.Min.X)/checkerSize+(y-r.Min.Y)/checkerSize)%2 == 1 {
				c = checkerDark
			}
			cell := image.Rect(x, y, x+checkerSize, y+checkerSize).Intersect(r)
			img.FillRect(cell, c)
		}
	}
}
