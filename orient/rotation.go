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

import "math"

// A Rotation is a base line rotated incrementally about an axis, sweeping
// the small circle of the base about the axis (a great circle when the two
// are perpendicular, as in Plane.Rotation). Two Rotations are equal (==)
// exactly when their axis and base lines are equal.
type Rotation struct {
	Axis, Base Line
}

// ConstituentLines returns samples+1 lines approximating the swept circle,
// produced by rotating the base about the axis by angles from 0 to π
// inclusive. samples must be positive.
func (r Rotation) ConstituentLines(samples int) []Line {
	lines := make([]Line, 0, samples+1)
	for i := 0; i <= samples; i++ {
		angle := float64(i) * math.Pi / float64(samples)
		lines = append(lines, r.Base.RotateAround(r.Axis, angle))
	}
	return lines
}
