package sample

import "strconv"

// Length is a physical length in meters.
type Length float64

// Common length units.
const (
	Nanometer  Length = 1e-9
	Micrometer Length = 1e-6
	Millimeter Length = 1e-3
	Meter      Length = 1
)

// Meters returns l in meters.
func (l Length) Meters() float64 { return float64(l) }

// Micrometers returns l in micrometers.
func (l Length) Micrometers() float64 { return float64(l / Micrometer) }

// Nanometers returns l in nanometers.
func (l Length) Nanometers() float64 { return float64(l / Nanometer) }

// String formats l in the largest unit that keeps the value >= 1.
func (l Length) String() string {
	abs := l
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs == 0:
		return "0m"
	case abs < Micrometer:
		return strconv.FormatFloat(l.Nanometers(), 'g', 6, 64) + "nm"
	case abs < Millimeter:
		return strconv.FormatFloat(l.Micrometers(), 'g', 6, 64) + "µm"
	case abs < Meter:
		return strconv.FormatFloat(float64(l/Millimeter), 'g', 6, 64) + "mm"
	default:
		return strconv.FormatFloat(l.Meters(), 'g', 6, 64) + "m"
	}
}
