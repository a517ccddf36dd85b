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

// Package stereonet projects orientation measurements onto a 2-D
// stereographic net for plotting. The net is the unit disk centered at the
// origin with x increasing east and y increasing north; a line plunging
// straight down maps to the origin and a horizontal line maps to the unit
// circle. Lines become points and rotations (great and small circles)
// become polylines, expressed as geometry values for a presentation layer
// to render.
package stereonet

import (
	"fmt"
	"math"

	"github.com/ctessum/geom"
	"github.com/spatialmodel/stereonet/orient"
)

// DefaultSamples is the number of rotation increments used to approximate
// a great or small circle when no explicit sample count is given.
const DefaultSamples = 100

// A Net is a mapping from line orientations to points in the unit disk.
type Net interface {
	// LineCoordinates returns the point representing l.
	LineCoordinates(l orient.Line) geom.Point
}

// EqualAngle is the stereographic (Wulff) projection. It preserves angles
// but not areas.
type EqualAngle struct{}

// LineCoordinates implements Net.
func (EqualAngle) LineCoordinates(l orient.Line) geom.Point {
	r := math.Tan(math.Pi/4 - l.Plunge()/2)
	return geom.Point{X: r * math.Sin(l.Trend()), Y: r * math.Cos(l.Trend())}
}

// EqualArea is the Lambert azimuthal (Schmidt) projection. It preserves
// areas but not angles.
type EqualArea struct{}

// LineCoordinates implements Net.
func (EqualArea) LineCoordinates(l orient.Line) geom.Point {
	r := math.Sqrt2 * math.Sin(math.Pi/4-l.Plunge()/2)
	return geom.Point{X: r * math.Sin(l.Trend()), Y: r * math.Cos(l.Trend())}
}

// ProjectRotation samples the rotation's constituent lines and projects
// each onto n, returning the polyline that approximates the rotation's
// great or small circle. samples must be positive.
func ProjectRotation(n Net, r orient.Rotation, samples int) geom.LineString {
	lines := r.ConstituentLines(samples)
	path := make(geom.LineString, len(lines))
	for i, l := range lines {
		path[i] = n.LineCoordinates(l)
	}
	return path
}

// ProjectPlane projects the plane's great circle onto n.
func ProjectPlane(n Net, p orient.Plane, samples int) geom.LineString {
	return ProjectRotation(n, p.Rotation(), samples)
}

// LatitudeGuide returns the small circle at the given latitude, for
// drawing the net's latitude rings. The latitude must be within
// [-π/2, π/2].
func LatitudeGuide(latitude float64) (orient.Rotation, error) {
	if latitude < -math.Pi/2 || latitude > math.Pi/2 {
		return orient.Rotation{}, fmt.Errorf("stereonet: latitude %g out of range [-pi/2, pi/2]", latitude)
	}
	return orient.Rotation{
		Axis: orient.NewLine(0, 0),
		Base: orient.NewLine(0, math.Pi/2-latitude),
	}, nil
}

// DipGuide returns the great circle of a plane with the given dip, for
// drawing the net's dip-angle guides. The guide dips right of north;
// pass leftHemisphere to dip it left (strike π instead of 0). The dip
// must be within [0, π/2].
func DipGuide(dip float64, leftHemisphere bool) (orient.Rotation, error) {
	if dip < 0 || dip > math.Pi/2 {
		return orient.Rotation{}, fmt.Errorf("stereonet: dip %g out of range [0, pi/2]", dip)
	}
	var strike float64
	if leftHemisphere {
		strike = math.Pi
	}
	return orient.NewPlane(strike, dip).Rotation(), nil
}
