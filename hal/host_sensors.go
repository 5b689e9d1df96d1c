//go:build !tinygo

package hal

// ReadTemp returns a fixed plausible temperature on host builds, where
// there is no on-board sensor.
func ReadTemp() float32 { return 27.5 }
