package record

import (
	"fmt"
	"math"
)

// tempNaN is the sentinel raw value meaning "sensor error / not a number".
// Other 16-bit sensor fields may share this sentinel too; this package
// preserves the raw value verbatim everywhere it is read so downstream code
// can decide, rather than clamping it to zero.
const tempNaN int16 = 0x7fff

// Temperature is a signed, tenths-of-a-degree-Fahrenheit raw reading, with
// tempNaN meaning "absent" (sensor error). Conversions never silently
// collapse the absent case to 0.0 — callers must check IsAbsent.
type Temperature struct {
	raw int16
}

// NewTemperature wraps a raw tenths-of-Fahrenheit reading.
func NewTemperature(raw int16) Temperature { return Temperature{raw: raw} }

// FromFahrenheit builds a Temperature from a whole-unit Fahrenheit value.
func FromFahrenheit(f float64) Temperature {
	return Temperature{raw: int16(math.Round(f * 10))}
}

// Raw returns the underlying tenths-of-Fahrenheit value, including the
// sentinel, unmodified.
func (t Temperature) Raw() int16 { return t.raw }

// IsAbsent reports whether the reading is the NaN sentinel.
func (t Temperature) IsAbsent() bool { return t.raw == tempNaN }

// Fahrenheit returns the temperature in degrees Fahrenheit and true, or
// (0, false) if the reading is absent.
func (t Temperature) Fahrenheit() (float64, bool) {
	if t.IsAbsent() {
		return 0, false
	}
	return float64(t.raw) / 10, true
}

// Celsius returns the temperature in degrees Celsius and true, or
// (0, false) if the reading is absent.
func (t Temperature) Celsius() (float64, bool) {
	f, ok := t.Fahrenheit()
	if !ok {
		return 0, false
	}
	return (f - 32) * 5 / 9, true
}

// String renders the temperature for logging/debugging.
func (t Temperature) String() string {
	if t.IsAbsent() {
		return "NaN"
	}
	f, _ := t.Fahrenheit()
	return fmt.Sprintf("%.1fF", f)
}
