package fs

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	FigureWidth  = 8 * vg.Inch
	FigureHeight = 6 * vg.Inch
	FigureDPI    = 100
)

// Rasterize draws p onto an 800x600 canvas.
func Rasterize(p *plot.Plot) image.Image {
	c := vgimg.NewWith(
		vgimg.UseWH(FigureWidth, FigureHeight),
		vgimg.UseDPI(FigureDPI),
	)
	p.Draw(draw.New(c))
	return c.Image()
}

// SavePNG rasterizes p and writes it to path, replacing any existing file.
func SavePNG(path string, p *plot.Plot) error {
	if err := gg.SavePNG(path, Rasterize(p)); err != nil {
		return fmt.Errorf("failed to save image %s: %w", path, err)
	}
	return nil
}
