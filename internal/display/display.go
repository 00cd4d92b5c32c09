// Package display renders the status screen on a 128x64 one-bit OLED.
package display

import (
	"image"
	"image/color"

	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/ssd1306"
	"periph.io/x/devices/v3/ssd1306/image1bit"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/thatsimonsguy/aq-monitor/internal/model"
)

// Drawer is the part of the panel driver the screen needs.
type Drawer interface {
	Bounds() image.Rectangle
	Draw(r image.Rectangle, src image.Image, sp image.Point) error
	Halt() error
}

// face is 6 px wide with a 10 px line: ascenders reach 7 rows above the
// baseline and descenders 2 below.
var face = &proggy.TinySZ8pt7b

// capHeight is how far below the text origin the baseline sits. Ascenders
// poke one row above the origin, descenders end 8 rows below it, so rows
// placed 10 px apart never touch.
var capHeight = -int(face.GetGlyph('0').Info().YOffset)

// TextWidth is the advance of text in pixels.
func TextWidth(text string) int {
	_, w := tinyfont.LineWidth(face, text)
	return int(w)
}

// Panel buffers one frame and pushes it to the device on Flush.
type Panel struct {
	dev Drawer
	img *image1bit.VerticalLSB
}

// Open attaches to an SSD1306 on bus at its default address.
func Open(bus i2c.Bus) (*Panel, error) {
	dev, err := ssd1306.NewI2C(bus, &ssd1306.DefaultOpts)
	if err != nil {
		return nil, err
	}
	return New(dev), nil
}

func New(dev Drawer) *Panel {
	return &Panel{
		dev: dev,
		img: image1bit.NewVerticalLSB(dev.Bounds()),
	}
}

func (p *Panel) Clear() {
	for i := range p.img.Pix {
		p.img.Pix[i] = 0
	}
}

// DrawText puts text with the top of its capitals at (x, y).
func (p *Panel) DrawText(x, y int, text string) {
	tinyfont.WriteLine(p, face, int16(x), int16(y+capHeight), text, color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

// Size, SetPixel and Display let tinyfont render into the frame buffer.
func (p *Panel) Size() (int16, int16) {
	b := p.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (p *Panel) SetPixel(x, y int16, c color.RGBA) {
	p.img.SetBit(int(x), int(y), image1bit.Bit(c.R|c.G|c.B != 0))
}

func (p *Panel) Display() error {
	return p.Flush()
}

func (p *Panel) DrawIcon(x, y int, icon model.Icon) {
	bitmap, ok := icons[icon]
	if !ok {
		log.Warn().Str("icon", string(icon)).Msg("Unknown icon")
		return
	}
	const rowBytes = iconSize / 8
	for row := 0; row < iconSize; row++ {
		for col := 0; col < iconSize; col++ {
			b := bitmap[row*rowBytes+col/8]
			if b&(0x80>>(col%8)) != 0 {
				p.img.SetBit(x+col, y+row, image1bit.On)
			}
		}
	}
}

func (p *Panel) Flush() error {
	return p.dev.Draw(p.dev.Bounds(), p.img, image.Point{})
}

// Close blanks the panel.
func (p *Panel) Close() error {
	p.Clear()
	if err := p.Flush(); err != nil {
		log.Warn().Err(err).Msg("Failed to blank display")
	}
	return p.dev.Halt()
}
