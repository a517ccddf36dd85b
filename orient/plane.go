/*
Copyright © 2026 the Stereonet authors.
This file is part of Stereonet.

Stereonet is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Stereonet is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Stereonet.  If not, see <http://www.gnu.org/licenses/>.
*/

package orient

import (
	"errors"
	"math"
)

// ErrParallelLines is returned when a plane is requested to span two
// parallel or antiparallel lines, which do not determine a plane.
var ErrParallelLines = errors.New("orient: cannot span a plane between parallel lines")

// crossTol is the cross-product magnitude below which two unit vectors are
// considered parallel.
const crossTol = 1e-9

// A Plane is an oriented plane given by strike (azimuth of a horizontal
// line in the plane) and dip (angle of steepest descent from horizontal),
// in radians. Planes are immutable and canonical: 0 ≤ dip ≤ π/2 and
// 0 ≤ strike < 2π.
type Plane struct {
	strike, dip float64
}

// NewPlane returns the canonical Plane for the given strike and dip in
// radians. A negative dip is corrected by negating it and adding π to the
// strike; the strike is then reduced modulo 2π.
func NewPlane(strike, dip float64) Plane {
	if dip < 0 {
		dip = -dip
		strike += math.Pi
	}
	strike = math.Mod(strike, 2*math.Pi)
	if strike < 0 {
		strike += 2 * math.Pi
	}
	return Plane{strike: strike, dip: dip}
}

// NewPlaneFromPole returns the plane perpendicular to pole.
func NewPlaneFromPole(pole Line) Plane {
	return NewPlane(pole.Trend()+math.Pi/2, math.Pi/2-pole.Plunge())
}

// NewPlaneFromDirectionCosines returns the plane whose pole points along v.
func NewPlaneFromDirectionCosines(v DirectionCosines) Plane {
	return NewPlaneFromPole(NewLineFromDirectionCosines(v))
}

// NewPlaneFromSpanning returns the plane containing both l1 and l2. It
// returns ErrParallelLines when the lines are parallel or antiparallel and
// therefore do not determine a plane.
func NewPlaneFromSpanning(l1, l2 Line) (Plane, error) {
	pole := l1.DirectionCosines().Cross(l2.DirectionCosines())
	if pole.Magnitude() < crossTol {
		return Plane{}, ErrParallelLines
	}
	if pole.Down < 0 {
		pole = pole.Neg()
	}
	return NewPlaneFromDirectionCosines(pole), nil
}

// Strike returns the strike azimuth in radians, in [0, 2π).
func (p Plane) Strike() float64 { return p.strike }

// Dip returns the dip angle in radians, in [0, π/2].
func (p Plane) Dip() float64 { return p.dip }

// Pole returns the line perpendicular to p.
func (p Plane) Pole() Line {
	return NewLine(math.Pi/2-p.dip, p.strike-math.Pi/2)
}

// DirectionCosines returns the unit north, east, down components of the
// plane's pole.
func (p Plane) DirectionCosines() DirectionCosines {
	return DirectionCosines{
		North: math.Sin(p.dip) * math.Sin(p.strike),
		East:  -math.Sin(p.dip) * math.Cos(p.strike),
		Down:  math.Cos(p.dip),
	}
}

// Rotation returns the rotation that sweeps out the plane's great circle:
// the plane's pole as axis and its strike line as base.
func (p Plane) Rotation() Rotation {
	return Rotation{Axis: p.Pole(), Base: NewLine(0, p.strike)}
}
