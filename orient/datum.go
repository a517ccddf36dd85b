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

// A Datum is a single orientation measurement: either a Plane (bedding,
// foliation) or a Line (a lineation or a pole measured directly). It is a
// tagged two-case variant so that mixed populations can be handled without
// type switching at every use.
type Datum struct {
	plane   Plane
	line    Line
	isPlane bool
}

// PlaneDatum returns a Datum holding p.
func PlaneDatum(p Plane) Datum { return Datum{plane: p, isPlane: true} }

// LineDatum returns a Datum holding l.
func LineDatum(l Line) Datum { return Datum{line: l} }

// Pole reduces the datum to a pole line: a plane contributes its pole,
// while a line is taken as already being a pole.
func (d Datum) Pole() Line {
	if d.isPlane {
		return d.plane.Pole()
	}
	return d.line
}

// Plane returns the held plane, and whether the datum is a plane.
func (d Datum) Plane() (Plane, bool) { return d.plane, d.isPlane }

// Line returns the held line, and whether the datum is a line.
func (d Datum) Line() (Line, bool) { return d.line, !d.isPlane }
