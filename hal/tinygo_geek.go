//go:build tinygo && baremetal

package hal

import (
	"errors"
	"machine"

	"tinygo.org/x/drivers/st7789"

	"geekstat/draw"
)

var ErrNoBacklightPWM = errors.New("no pwm slice for backlight pin")

// Waveshare RP2040/RP2350-GEEK LCD wiring.
const (
	geekSCLK = machine.GPIO10
	geekTX   = machine.GPIO11
	geekRST  = machine.GPIO12
	geekDC   = machine.GPIO8
	geekCS   = machine.GPIO9
	geekBL   = machine.GPIO25
)

// pwmDevice narrows the rp2 PWM slice values, whose concrete type the
// machine package does not export.
type pwmDevice interface {
	Configure(config machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

func pwmForPin(pin machine.Pin) pwmDevice {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil
	}
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	case 7:
		return machine.PWM7
	default:
		return nil
	}
}

// GeekDevice drives the on-board 240x135 ST7789 panel.
type GeekDevice struct {
	lcd     st7789.Device
	pwm     pwmDevice
	pwmCh   uint8
	rotated bool
}

// NewGeekDevice returns the device for the GEEK's LCD. The controller
// itself is brought up by Init on the scheduler context.
func NewGeekDevice() *GeekDevice { return &GeekDevice{} }

func (d *GeekDevice) Init(backlight uint8) error {
	machine.SPI1.Configure(machine.SPIConfig{
		SCK:       geekSCLK,
		SDO:       geekTX,
		Frequency: 50_000_000,
	})

	d.lcd = st7789.New(machine.SPI1, geekRST, geekDC, geekCS, machine.NoPin)
	d.lcd.Configure(st7789.Config{
		Width:     135,
		Height:    240,
		RowOffset: 40,
		ColOffset: 53,
		Rotation:  st7789.ROTATION_90,
	})

	// Backlight PWM, so intensity is a duty cycle and not just on/off.
	d.pwm = pwmForPin(geekBL)
	if d.pwm == nil {
		return ErrNoBacklightPWM
	}
	if err := d.pwm.Configure(machine.PWMConfig{Period: 1e9 / 25000}); err != nil {
		return err
	}
	ch, err := d.pwm.Channel(geekBL)
	if err != nil {
		return err
	}
	d.pwmCh = ch
	d.Backlight(backlight)
	return nil
}

func (d *GeekDevice) Backlight(pct uint8) {
	if d.pwm == nil {
		return
	}
	if pct > 100 {
		pct = 100
	}
	d.pwm.Set(d.pwmCh, d.pwm.Top()*uint32(pct)/100)
}

func (d *GeekDevice) Rotation(rotated bool) {
	d.rotated = rotated
	if rotated {
		d.lcd.SetRotation(st7789.ROTATION_270)
	} else {
		d.lcd.SetRotation(st7789.ROTATION_90)
	}
}

func (d *GeekDevice) Send(pm *draw.Pixmap) {
	if pm.Depth != draw.Depth16 {
		// The driver is 16bpp only; leave the panel untouched.
		return
	}
	d.lcd.DrawRGBBitmap8(0, 0, pm.Bits, int16(pm.Width), int16(pm.Height))
}

func (d *GeekDevice) Close() {
	d.Backlight(0)
	d.lcd.Sleep(true)
}

// ReadTemp reads the on-chip temperature sensor in degrees Celsius.
func ReadTemp() float32 {
	return float32(machine.ReadTemperature()) / 1000
}
