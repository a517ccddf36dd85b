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

package stereonet

import (
	"fmt"
	"math"

	"github.com/spatialmodel/stereonet/orient"
)

// Interchange records for orientation data. The canonical stored and
// displayed unit is degrees; the canonical computation unit is radians.
// The conversion happens here, at the boundary, and nowhere inside the
// core packages.

const degPerRad = 180 / math.Pi

// A LineRecord is the interchange form of an orient.Line, in degrees.
type LineRecord struct {
	Plunge float64 `json:"plunge"`
	Trend  float64 `json:"trend"`
}

// NewLineRecord converts l to its degree-based interchange form.
func NewLineRecord(l orient.Line) LineRecord {
	return LineRecord{Plunge: l.Plunge() * degPerRad, Trend: l.Trend() * degPerRad}
}

// Line converts the record back to a canonical orient.Line.
func (r LineRecord) Line() orient.Line {
	return orient.NewLine(r.Plunge/degPerRad, r.Trend/degPerRad)
}

// A PlaneRecord is the interchange form of an orient.Plane, in degrees.
type PlaneRecord struct {
	Strike float64 `json:"strike"`
	Dip    float64 `json:"dip"`
}

// NewPlaneRecord converts p to its degree-based interchange form.
func NewPlaneRecord(p orient.Plane) PlaneRecord {
	return PlaneRecord{Strike: p.Strike() * degPerRad, Dip: p.Dip() * degPerRad}
}

// Plane converts the record back to a canonical orient.Plane.
func (r PlaneRecord) Plane() orient.Plane {
	return orient.NewPlane(r.Strike/degPerRad, r.Dip/degPerRad)
}

// A DatumRecord is the interchange form of an orient.Datum. Exactly one of
// the plunge/trend and strike/dip field pairs is present; which pair is
// present determines the datum's case when decoding.
type DatumRecord struct {
	Plunge *float64 `json:"plunge,omitempty"`
	Trend  *float64 `json:"trend,omitempty"`
	Strike *float64 `json:"strike,omitempty"`
	Dip    *float64 `json:"dip,omitempty"`
}

// NewDatumRecord converts d to its degree-based interchange form.
func NewDatumRecord(d orient.Datum) DatumRecord {
	if p, ok := d.Plane(); ok {
		r := NewPlaneRecord(p)
		return DatumRecord{Strike: &r.Strike, Dip: &r.Dip}
	}
	l, _ := d.Line()
	r := NewLineRecord(l)
	return DatumRecord{Plunge: &r.Plunge, Trend: &r.Trend}
}

// Datum converts the record back to an orient.Datum. It returns an error
// when the record holds neither a complete plunge/trend pair nor a
// complete strike/dip pair.
func (r DatumRecord) Datum() (orient.Datum, error) {
	switch {
	case r.Plunge != nil && r.Trend != nil:
		return orient.LineDatum(LineRecord{Plunge: *r.Plunge, Trend: *r.Trend}.Line()), nil
	case r.Strike != nil && r.Dip != nil:
		return orient.PlaneDatum(PlaneRecord{Strike: *r.Strike, Dip: *r.Dip}.Plane()), nil
	default:
		return orient.Datum{}, fmt.Errorf("stereonet: record holds neither plunge/trend nor strike/dip")
	}
}
