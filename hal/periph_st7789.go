//go:build periph && !tinygo

package hal

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"geekstat/draw"
)

// SPIConfig names the bus and pins of an ST7789 panel attached to a
// Linux SBC.
type SPIConfig struct {
	Port  string // e.g. "SPI0.0", empty for the first port
	DC    string // data/command pin name, e.g. "GPIO25"
	Reset string
	Hz    int // SPI clock in hertz
}

// SPIDevice drives an ST7789 panel through periph.io. Unlike the
// TinyGo driver it writes the pixel stream raw, so both 16-bit and
// 12-bit frames work.
type SPIDevice struct {
	cfg     SPIConfig
	port    spi.PortCloser
	conn    spi.Conn
	dc      gpio.PinOut
	rst     gpio.PinOut
	rotated bool
}

// ST7789 register initialization, from the panel vendor's sequence.
// A length with bit 7 set delays 100ms after the command.
var st7789Init = []byte{
	0x36, 1, 0x70, // Memory Data Access Control
	0xb2, 5, 0x0c, 0x0c, 0x00, 0x33, 0x33, // Porch Setting
	0xb7, 1, 0x35, // Gate Control
	0xbb, 1, 0x19, // VCOM Setting
	0xc0, 1, 0x2c, // LCM Control
	0xc2, 1, 0x01, // VDV & VRH Command Enable
	0xc3, 1, 0x12, // VRH Set
	0xc4, 1, 0x20, // VDV Set
	0xc5, 1, 0x20, // VCOM Offset Set
	0xc6, 1, 0x0f, // FRC in Normal Mode
	0xd0, 2, 0xa4, 0xa1, // Power Control 1
	0x21, 0, // Display Inversion On
	0x11, 0 | 0x80, // Sleep Out
	0x29, 0 | 0x80, // Display On
}

// NewSPIDevice returns a device for the named SPI port and pins.
func NewSPIDevice(cfg SPIConfig) *SPIDevice {
	if cfg.Hz == 0 {
		cfg.Hz = 50_000_000
	}
	return &SPIDevice{cfg: cfg}
}

func (d *SPIDevice) Init(backlight uint8) error {
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("periph host init: %w", err)
	}
	port, err := spireg.Open(d.cfg.Port)
	if err != nil {
		return fmt.Errorf("open spi %q: %w", d.cfg.Port, err)
	}
	conn, err := port.Connect(physic.Frequency(d.cfg.Hz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		port.Close()
		return fmt.Errorf("connect spi: %w", err)
	}
	d.port = port
	d.conn = conn

	if d.dc = gpioreg.ByName(d.cfg.DC); d.dc == nil {
		return fmt.Errorf("no such pin %q", d.cfg.DC)
	}
	if d.rst = gpioreg.ByName(d.cfg.Reset); d.rst == nil {
		return fmt.Errorf("no such pin %q", d.cfg.Reset)
	}

	d.rst.Out(gpio.High)
	time.Sleep(100 * time.Millisecond)
	d.rst.Out(gpio.Low)
	time.Sleep(100 * time.Millisecond)
	d.rst.Out(gpio.High)
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < len(st7789Init); {
		d.cmd(st7789Init[i])
		i++
		n := st7789Init[i]
		i++
		for j := byte(0); j < n&0x7f; j++ {
			d.data(st7789Init[i])
			i++
		}
		if n&0x80 != 0 {
			time.Sleep(100 * time.Millisecond)
		}
	}
	return nil
}

// Backlight is a no-op here: SBC boards usually wire the backlight to
// a PWM controller managed outside this process.
func (d *SPIDevice) Backlight(pct uint8) {}

func (d *SPIDevice) Rotation(rotated bool) {
	d.cmd(0x36)
	if rotated {
		d.data(0xb0) // MY=1, MX=0, MV=1, ML=1
	} else {
		d.data(0x70) // MY=0, MX=1, MV=1, ML=1
	}
	d.rotated = rotated
}

func (d *SPIDevice) Send(pm *draw.Pixmap) {
	if d.conn == nil {
		return
	}
	const xoff = 40
	yoff := 53
	if d.rotated {
		yoff = 52
	}

	d.cmd(0x3a) // Interface Pixel Format
	if pm.Depth == draw.Depth12 {
		d.data(0x03)
	} else {
		d.data(0x05)
	}
	d.window(xoff, yoff, pm.Width, pm.Height)
	d.cmd(0x2c) // Memory Write
	d.dc.Out(gpio.High)
	// Linux spidev caps single transfers; chunk the stream.
	for off := 0; off < len(pm.Bits); off += 4096 {
		end := off + 4096
		if end > len(pm.Bits) {
			end = len(pm.Bits)
		}
		d.conn.Tx(pm.Bits[off:end], nil)
	}
}

func (d *SPIDevice) Close() {
	if d.conn != nil {
		d.cmd(0x28) // Display Off
		time.Sleep(100 * time.Millisecond)
		d.cmd(0x10) // Sleep In
		time.Sleep(100 * time.Millisecond)
	}
	if d.port != nil {
		d.port.Close()
	}
}

func (d *SPIDevice) window(x, y, w, h int) {
	d.cmd(0x2a) // Column Address Set
	d.data16(uint16(x))
	d.data16(uint16(x + w - 1))
	d.cmd(0x2b) // Row Address Set
	d.data16(uint16(y))
	d.data16(uint16(y + h - 1))
}

func (d *SPIDevice) cmd(b byte) {
	d.dc.Out(gpio.Low)
	d.conn.Tx([]byte{b}, nil)
}

func (d *SPIDevice) data(b byte) {
	d.dc.Out(gpio.High)
	d.conn.Tx([]byte{b}, nil)
}

func (d *SPIDevice) data16(v uint16) {
	d.dc.Out(gpio.High)
	d.conn.Tx([]byte{byte(v >> 8), byte(v)}, nil)
}
