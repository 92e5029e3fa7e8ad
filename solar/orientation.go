package solar

import (
	"fmt"
	"math"
)

// Orientation names the direction a building surface faces.
type Orientation string

const (
	OrientationS      Orientation = "s"
	OrientationSW     Orientation = "sw"
	OrientationW      Orientation = "w"
	OrientationNW     Orientation = "nw"
	OrientationN      Orientation = "n"
	OrientationNE     Orientation = "ne"
	OrientationE      Orientation = "e"
	OrientationSE     Orientation = "se"
	OrientationTop    Orientation = "top"
	OrientationBottom Orientation = "bottom"
)

// Orientations lists every orientation, walls first.
var Orientations = []Orientation{
	OrientationS, OrientationSW, OrientationW, OrientationNW,
	OrientationN, OrientationNE, OrientationE, OrientationSE,
	OrientationTop, OrientationBottom,
}

// OrientationFromString parses an orientation name such as "sw" or "top".
func OrientationFromString(str string) (Orientation, error) {
	switch o := Orientation(str); o {
	case OrientationS, OrientationSW, OrientationW, OrientationNW,
		OrientationN, OrientationNE, OrientationE, OrientationSE,
		OrientationTop, OrientationBottom:
		return o, nil
	default:
		return "", fmt.Errorf("invalid orientation %q", str)
	}
}

/*
Azimuth returns the azimuth of the surface normal.

	Returns:
		azimuth clockwise from north, rad

	Notes:
		Horizontal surfaces have no azimuth; 0 is returned since the tilt removes it from
		every incidence calculation.
*/
func (o Orientation) Azimuth() float64 {
	switch o {
	case OrientationS:
		return math.Pi * 180.0 / 180.0
	case OrientationSW:
		return math.Pi * 225.0 / 180.0
	case OrientationW:
		return math.Pi * 270.0 / 180.0
	case OrientationNW:
		return math.Pi * 315.0 / 180.0
	case OrientationN:
		return 0.0
	case OrientationNE:
		return math.Pi * 45.0 / 180.0
	case OrientationE:
		return math.Pi * 90.0 / 180.0
	case OrientationSE:
		return math.Pi * 135.0 / 180.0
	case OrientationTop, OrientationBottom:
		return 0.0
	default:
		panic("invalid orientation")
	}
}

/*
Tilt returns the tilt of the surface from horizontal.

	Returns:
		tilt, rad (0 facing up, π/2 for walls, π facing down)
*/
func (o Orientation) Tilt() float64 {
	switch o {
	case OrientationTop:
		return 0.0
	case OrientationBottom:
		return math.Pi
	case OrientationS, OrientationSW, OrientationW, OrientationNW,
		OrientationN, OrientationNE, OrientationE, OrientationSE:
		return math.Pi / 2
	default:
		panic("invalid orientation")
	}
}
