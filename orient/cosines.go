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

// Package orient represents orientation measurements (lines and planes in
// a north/east/down geographic frame) and the spherical trigonometry used
// to transform them: direction-cosine conversion, rotation about arbitrary
// axes, and pole/plane duality. Angles are radians throughout; degree
// conversion happens at the interchange boundary, not here.
package orient

import "math"

// DirectionCosines holds the components of a vector along the north, east,
// and down axes. It represents unit direction cosines as well as the
// non-unit sums and differences that arise in intermediate calculations;
// callers that require a unit vector normalize explicitly.
type DirectionCosines struct {
	North, East, Down float64
}

// Add returns the component-wise sum v + w.
func (v DirectionCosines) Add(w DirectionCosines) DirectionCosines {
	return DirectionCosines{v.North + w.North, v.East + w.East, v.Down + w.Down}
}

// Sub returns the component-wise difference v - w.
func (v DirectionCosines) Sub(w DirectionCosines) DirectionCosines {
	return DirectionCosines{v.North - w.North, v.East - w.East, v.Down - w.Down}
}

// Scale returns v scaled by k.
func (v DirectionCosines) Scale(k float64) DirectionCosines {
	return DirectionCosines{v.North * k, v.East * k, v.Down * k}
}

// Div returns v divided by k.
func (v DirectionCosines) Div(k float64) DirectionCosines {
	return DirectionCosines{v.North / k, v.East / k, v.Down / k}
}

// Neg returns the antipodal vector -v.
func (v DirectionCosines) Neg() DirectionCosines {
	return DirectionCosines{-v.North, -v.East, -v.Down}
}

// Magnitude returns the Euclidean norm of v.
func (v DirectionCosines) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalized returns v scaled to unit magnitude. The result is undefined
// for a zero vector; geometry callers never normalize one because lines
// and poles are unit-length by construction.
func (v DirectionCosines) Normalized() DirectionCosines {
	return v.Div(v.Magnitude())
}

// Dot returns the dot product v · w.
func (v DirectionCosines) Dot(w DirectionCosines) float64 {
	return v.North*w.North + v.East*w.East + v.Down*w.Down
}

// Cross returns the cross product v × w by the right-hand determinant
// formula on (north, east, down) components.
func (v DirectionCosines) Cross(w DirectionCosines) DirectionCosines {
	return DirectionCosines{
		North: v.East*w.Down - v.Down*w.East,
		East:  v.Down*w.North - v.North*w.Down,
		Down:  v.North*w.East - v.East*w.North,
	}
}
