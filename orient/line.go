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
	"math"

	"gonum.org/v1/gonum/mat"
)

// downTol is the magnitude below which a negative down component produced
// by rotation is treated as floating-point residue and clamped to zero.
// Rotating a line that lies in the horizontal plane can land one machine
// epsilon below the horizon; without the clamp the hemisphere correction
// would flip such a line to the opposite horizon point.
const downTol = 1e-12

// A Line is an oriented line given by plunge (angle below horizontal) and
// trend (azimuth), in radians. Lines are immutable and canonical:
// 0 ≤ plunge ≤ π/2 and 0 ≤ trend < 2π, so a Line always denotes a
// direction in the lower hemisphere. Two Lines are equal (==) exactly when
// their canonical plunge/trend pairs are equal.
type Line struct {
	plunge, trend float64
}

// NewLine returns the canonical Line for the given plunge and trend in
// radians. A negative plunge is corrected by negating it and adding π to
// the trend; the trend is then reduced modulo 2π.
func NewLine(plunge, trend float64) Line {
	if plunge < 0 {
		plunge = -plunge
		trend += math.Pi
	}
	trend = math.Mod(trend, 2*math.Pi)
	if trend < 0 {
		trend += 2 * math.Pi
	}
	return Line{plunge: plunge, trend: trend}
}

// NewLineFromDirectionCosines returns the Line pointing along v.
// v need not be unit length or in the lower hemisphere; it is normalized
// and the resulting line canonicalized.
func NewLineFromDirectionCosines(v DirectionCosines) Line {
	v = v.Normalized()
	var trend float64
	if v.North == 0 {
		trend = math.Pi / 2
		if v.East < 0 {
			trend = 3 * math.Pi / 2
		}
	} else {
		trend = math.Atan(v.East / v.North)
		if v.North < 0 {
			trend += math.Pi
		}
	}
	return NewLine(math.Asin(v.Down), trend)
}

// Plunge returns the angle below horizontal in radians, in [0, π/2].
func (l Line) Plunge() float64 { return l.plunge }

// Trend returns the azimuth in radians, in [0, 2π).
func (l Line) Trend() float64 { return l.trend }

// DirectionCosines returns the unit north, east, down components of l.
func (l Line) DirectionCosines() DirectionCosines {
	return DirectionCosines{
		North: math.Cos(l.plunge) * math.Cos(l.trend),
		East:  math.Cos(l.plunge) * math.Sin(l.trend),
		Down:  math.Sin(l.plunge),
	}
}

// RotateAround returns l rotated about axis by angle radians. The rotation
// matrix follows Rodrigues' formula parameterized by the axis's direction
// cosines. A rotated vector that ends up in the upper hemisphere is
// replaced by its antipode, which represents the same undirected line in
// the lower-hemisphere convention; a down component within downTol of zero
// is clamped first so lines rotated within the horizontal plane stay on
// the horizon.
func (l Line) RotateAround(axis Line, angle float64) Line {
	a := axis.DirectionCosines()
	c, s := math.Cos(angle), math.Sin(angle)
	m := 1 - c
	r := mat.NewDense(3, 3, []float64{
		c + a.North*a.North*m, -a.Down*s + a.North*a.East*m, a.East*s + a.North*a.Down*m,
		a.Down*s + a.East*a.North*m, c + a.East*a.East*m, -a.North*s + a.East*a.Down*m,
		-a.East*s + a.Down*a.North*m, a.North*s + a.Down*a.East*m, c + a.Down*a.Down*m,
	})
	v := l.DirectionCosines()
	var out mat.VecDense
	out.MulVec(r, mat.NewVecDense(3, []float64{v.North, v.East, v.Down}))
	rot := DirectionCosines{North: out.AtVec(0), East: out.AtVec(1), Down: out.AtVec(2)}
	if rot.Down < 0 && rot.Down > -downTol {
		rot.Down = 0
	}
	if rot.Down < 0 {
		rot = rot.Neg()
	}
	return NewLineFromDirectionCosines(rot)
}
