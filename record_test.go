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
	"encoding/json"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"

	"github.com/spatialmodel/stereonet/orient"
)

func TestLineRecordDegrees(t *testing.T) {
	const tol = 1e-12
	r := NewLineRecord(orient.NewLine(math.Pi/2, 0))
	if !floats.EqualWithinAbs(r.Plunge, 90, tol) || !floats.EqualWithinAbs(r.Trend, 0, tol) {
		t.Errorf("record = %+v, want plunge 90, trend 0", r)
	}
	l := LineRecord{Plunge: 45, Trend: 270}.Line()
	if !floats.EqualWithinAbs(l.Plunge(), math.Pi/4, tol) ||
		!floats.EqualWithinAbs(l.Trend(), 3*math.Pi/2, tol) {
		t.Errorf("line = (%g, %g), want (π/4, 3π/2)", l.Plunge(), l.Trend())
	}
}

func TestPlaneRecordRoundTrip(t *testing.T) {
	const tol = 1e-12
	p := orient.NewPlane(2.1, 0.7)
	got := NewPlaneRecord(p).Plane()
	if !floats.EqualWithinAbs(got.Strike(), p.Strike(), tol) ||
		!floats.EqualWithinAbs(got.Dip(), p.Dip(), tol) {
		t.Errorf("round trip = %g/%g, want %g/%g", got.Strike(), got.Dip(), p.Strike(), p.Dip())
	}
}

// Records canonicalize on the way back in, so an out-of-range stored value
// still produces a valid orientation.
func TestRecordCanonicalizes(t *testing.T) {
	const tol = 1e-12
	l := LineRecord{Plunge: -30, Trend: 90}.Line()
	if !floats.EqualWithinAbs(l.Plunge(), math.Pi/6, tol) ||
		!floats.EqualWithinAbs(l.Trend(), 3*math.Pi/2, tol) {
		t.Errorf("line = (%g, %g), want (π/6, 3π/2)", l.Plunge(), l.Trend())
	}
}

func TestDatumRecordJSON(t *testing.T) {
	const tol = 1e-9
	plane := orient.PlaneDatum(orient.NewPlane(math.Pi/3, math.Pi/4))
	line := orient.LineDatum(orient.NewLine(math.Pi/6, math.Pi))

	for _, d := range []orient.Datum{plane, line} {
		b, err := json.Marshal(NewDatumRecord(d))
		if err != nil {
			t.Fatal(err)
		}
		var r DatumRecord
		if err := json.Unmarshal(b, &r); err != nil {
			t.Fatal(err)
		}
		got, err := r.Datum()
		if err != nil {
			t.Fatal(err)
		}
		wantPole, gotPole := d.Pole(), got.Pole()
		if !floats.EqualWithinAbs(wantPole.Plunge(), gotPole.Plunge(), tol) ||
			!floats.EqualWithinAbs(wantPole.Trend(), gotPole.Trend(), tol) {
			t.Errorf("datum round trip through %s: pole (%g, %g), want (%g, %g)",
				b, gotPole.Plunge(), gotPole.Trend(), wantPole.Plunge(), wantPole.Trend())
		}
		if _, isPlane := d.Plane(); isPlane {
			if _, ok := got.Plane(); !ok {
				t.Errorf("plane datum decoded as a line: %s", b)
			}
		} else if _, ok := got.Line(); !ok {
			t.Errorf("line datum decoded as a plane: %s", b)
		}
	}
}

func TestDatumRecordFieldPresence(t *testing.T) {
	var r DatumRecord
	if err := json.Unmarshal([]byte(`{"strike": 120, "dip": 45}`), &r); err != nil {
		t.Fatal(err)
	}
	d, err := r.Datum()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := d.Plane(); !ok {
		t.Error("strike/dip record did not decode to a plane")
	}

	var named DatumRecord
	if err := json.Unmarshal([]byte(`{"name": "group"}`), &named); err != nil {
		t.Fatal(err)
	}
	if _, err := named.Datum(); err == nil {
		t.Error("record without orientation fields did not fail")
	}

	var lone DatumRecord
	if err := json.Unmarshal([]byte(`{"plunge": 10}`), &lone); err != nil {
		t.Fatal(err)
	}
	if _, err := lone.Datum(); err == nil {
		t.Error("record with a lone plunge field did not fail")
	}
}
