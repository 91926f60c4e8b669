// Package lcd drives the ST7789 panel of the Waveshare 1.3" 240x240
// HAT over SPI.
package lcd

import (
	"fmt"
	"image"
	"time"
	"unsafe"

	"analogface.dev/image/rgb565"
	"golang.org/x/image/draw"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/bcm283x"
)

type LCD struct {
	port      spi.PortCloser
	conn      spi.Conn
	pins      pins
	fb        *rgb565.Image
	window    image.Rectangle
	txBuf     []byte
	backlight bool
}

// pins are the control lines of the panel.
type pins struct {
	rst, dc, bl gpio.PinOut
}

const (
	lcdWidth  = 240
	lcdHeight = 240
)

// Open initializes the host, resets the panel and returns it with a
// blank framebuffer. The backlight turns on at the first Dirty.
func Open() (*LCD, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("lcd: %w", err)
	}
	// Use the first available SPI bus.
	p, err := spireg.Open("")
	if err != nil {
		return nil, fmt.Errorf("lcd: %w", err)
	}
	c, err := p.Connect(40*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("lcd: %w", err)
	}
	if err := bcm283x.GPIO8.Out(gpio.High); err != nil {
		p.Close()
		return nil, fmt.Errorf("lcd: chip select: %w", err)
	}
	l := newLCD(c, pins{
		rst: bcm283x.GPIO27,
		dc:  bcm283x.GPIO25,
		bl:  bcm283x.GPIO24,
	})
	l.port = p
	if err := l.setup(); err != nil {
		l.Close()
		return nil, err
	}
	return l, nil
}

func newLCD(c spi.Conn, p pins) *LCD {
	maxTx := 4096
	if lim, ok := c.(conn.Limits); ok {
		maxTx = lim.MaxTxSize()
	}
	return &LCD{
		conn:  c,
		pins:  p,
		fb:    rgb565.New(image.Rect(0, 0, lcdWidth, lcdHeight)),
		txBuf: make([]byte, maxTx),
	}
}

func (l *LCD) Close() {
	if l.backlight {
		l.pins.bl.Out(gpio.Low)
		l.backlight = false
	}
	if l.port != nil {
		l.port.Close()
		l.port = nil
	}
	l.conn = nil
}

func (l *LCD) sendCommand(cmd byte, data ...byte) error {
	if err := l.pins.dc.Out(gpio.Low); err != nil {
		return err
	}
	if err := l.conn.Tx([]byte{cmd}, make([]byte, 1)); err != nil {
		return err
	}
	if len(data) > 0 {
		if err := l.pins.dc.Out(gpio.High); err != nil {
			return err
		}
		if err := l.conn.Tx(data, nil); err != nil {
			return err
		}
	}
	return nil
}

func (l *LCD) setup() error {
	for _, p := range []gpio.PinOut{l.pins.rst, l.pins.dc} {
		if err := p.Out(gpio.High); err != nil {
			return fmt.Errorf("lcd: %w", err)
		}
	}

	// Turn off backlight during setup.
	l.pins.bl.Out(gpio.Low)

	// Reset LCD.
	rst := l.pins.rst
	rst.Out(gpio.High)
	time.Sleep(100 * time.Millisecond)
	rst.Out(gpio.Low)
	time.Sleep(100 * time.Millisecond)
	rst.Out(gpio.High)
	time.Sleep(100 * time.Millisecond)

	var cmdErr error
	sendCommand := func(cmd byte, data ...byte) {
		if cmdErr != nil {
			return
		}
		cmdErr = l.sendCommand(cmd, data...)
	}
	// Set horizontal scanout.
	sendCommand(0x36 /*MADCTL*/, 0x70 /* MX, MY, RGB mode */)

	sendCommand(0x11 /*SLPOUT*/)
	time.Sleep(120 * time.Millisecond)
	sendCommand(0x3a /*COLMOD*/, 0x05)
	sendCommand(0xb2 /*PORCTRL*/, 0x0c, 0x0c, 0x00, 0x33, 0x33)
	sendCommand(0xb7 /*GCTRL*/, 0x35)
	sendCommand(0xbb /*VCOMS*/, 0x37)
	sendCommand(0xc0 /*LCMCTRL*/, 0x2c)
	sendCommand(0xc2 /*VDVVRHEN*/, 0x01)
	sendCommand(0xc3 /*VRHS*/, 0x12)
	sendCommand(0xc4 /*VDVS*/, 0x20)
	sendCommand(0xc6 /*FRCTRL2*/, 0x0f)
	sendCommand(0xd0 /*PWCTRL1*/, 0xa4, 0xa1)
	sendCommand(0xba /*DGMEN: Enable Gamma*/, 0x04)
	sendCommand(0x21 /*INVON*/)
	sendCommand(0x29 /*DISPON*/)
	if cmdErr != nil {
		return fmt.Errorf("lcd: SPI command: %w", cmdErr)
	}
	return nil
}

// Framebuffer returns the in-memory copy of the panel contents.
func (l *LCD) Framebuffer() draw.Image {
	return l.fb
}

// Dirty transfers the framebuffer area sr to the panel.
func (l *LCD) Dirty(sr image.Rectangle) error {
	fb := l.fb
	sr = sr.Intersect(fb.Bounds())
	if sr.Empty() {
		return nil
	}
	if err := l.setWindow(sr); err != nil {
		return fmt.Errorf("lcd: window: %w", err)
	}
	if err := l.pins.dc.Out(gpio.High); err != nil {
		return fmt.Errorf("lcd: %w", err)
	}

	buf := l.txBuf[:0]
	for y := sr.Min.Y; y < sr.Max.Y; y++ {
		start := fb.PixOffset(sr.Min.X, y)
		row := fb.Pix[start : start+sr.Dx()]
		// Pixels are stored in wire order.
		pix := unsafe.Slice((*byte)(unsafe.Pointer(&row[0])), len(row)*2)
		for len(pix) > 0 {
			n := copy(buf[len(buf):cap(buf)], pix)
			buf = buf[:len(buf)+n]
			pix = pix[n:]
			if len(buf) == cap(buf) {
				if err := l.conn.Tx(buf, nil); err != nil {
					return fmt.Errorf("lcd: blit: %w", err)
				}
				buf = buf[:0]
			}
		}
	}
	if len(buf) > 0 {
		if err := l.conn.Tx(buf, nil); err != nil {
			return fmt.Errorf("lcd: blit: %w", err)
		}
	}

	// Turn on backlight if necessary.
	if !l.backlight {
		l.pins.bl.Out(gpio.High)
		l.backlight = true
	}
	return nil
}

func (l *LCD) setWindow(r image.Rectangle) error {
	var cmdErr error
	sendCommand := func(cmd byte, data ...byte) {
		if cmdErr != nil {
			return
		}
		cmdErr = l.sendCommand(cmd, data...)
	}
	if l.window != r {
		sendCommand(0x2a /* CASET */, byte(r.Min.X>>8), byte(r.Min.X), byte((r.Max.X-1)>>8), byte(r.Max.X-1))
		sendCommand(0x2b /* RASET */, byte(r.Min.Y>>8), byte(r.Min.Y), byte((r.Max.Y-1)>>8), byte(r.Max.Y-1))
		if cmdErr == nil {
			l.window = r
		}
	}
	// Every transfer restarts at the window origin.
	sendCommand(0x2c /* RAMWR */)
	return cmdErr
}
