package charts

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// category colours, in hue order
var categoryColors = []color.Color{
	color.RGBA{R: 0x4c, G: 0x72, B: 0xb0, A: 0xff},
	color.RGBA{R: 0xdd, G: 0x84, B: 0x52, A: 0xff},
	color.RGBA{R: 0x55, G: 0xa8, B: 0x68, A: 0xff},
	color.RGBA{R: 0xc4, G: 0x4e, B: 0x52, A: 0xff},
	color.RGBA{R: 0x81, G: 0x72, B: 0xb3, A: 0xff},
}

func categoryColor(i int) color.Color {
	return categoryColors[i%len(categoryColors)]
}

// fade returns c at the given opacity
func fade(c color.Color, alpha uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: alpha}
}

// presence colours for the missing-data heatmap: present, absent
var (
	presentColor = color.RGBA{R: 0x44, G: 0x01, B: 0x54, A: 0xff}
	absentColor  = color.RGBA{R: 0xfd, G: 0xe7, B: 0x25, A: 0xff}
)

// fixedPalette is a palette.Palette over a fixed colour list
type fixedPalette []color.Color

func (p fixedPalette) Colors() []color.Color { return p }

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	return p
}

// barWidth is the width of one bar for a figure holding n groups
func barWidth(sz size, n int) vg.Length {
	if n < 1 {
		n = 1
	}
	return sz.w * 0.6 / vg.Length(n+1)
}
