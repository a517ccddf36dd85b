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

// Package fold fits fold geometry to a population of bedding measurements
// collected on both limbs of a fold: a best-fit profile plane
// (perpendicular to the fold axis) and an axial plane (bisecting the
// limbs). The fit is a single-shot, stateless computation; a Fold is
// constructed per analysis and discarded.
package fold

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/spatialmodel/stereonet/orient"
)

const (
	// DefaultTopLimbProportion assumes the input population is split
	// evenly between the two limbs.
	DefaultTopLimbProportion = 0.5

	// DefaultDipIncrement is the profile-plane dip search step, 0.1°.
	DefaultDipIncrement = math.Pi / 1800
)

// ErrNoProfilePlane is returned when the dip search finds no candidate
// that splits the pole population in half. This can happen with small or
// skewed populations; it carries no partial result.
var ErrNoProfilePlane = errors.New("fold: no profile plane found")

// A Fold holds the poles-to-bedding derived from a population of
// measurements on both limbs of a fold.
type Fold struct {
	poles []orient.Line

	// topLimbProportion is the proportion of the population collected on
	// the limb that is a bearing of the profile plane's strike from the
	// fold axis.
	topLimbProportion float64
}

// New derives a Fold from a mixed population of planes and lines: a plane
// is assumed to be bedding and contributes its pole, while a line is taken
// as already being a pole to bedding. topLimbProportion is the proportion
// of the population collected on one limb, in (0, 1); pass
// DefaultTopLimbProportion for an even split.
func New(data []orient.Datum, topLimbProportion float64) *Fold {
	poles := make([]orient.Line, len(data))
	for i, d := range data {
		poles[i] = d.Pole()
	}
	return &Fold{poles: poles, topLimbProportion: topLimbProportion}
}

// Poles returns a copy of the pole population the fold was built from.
func (f *Fold) Poles() []orient.Line {
	poles := make([]orient.Line, len(f.poles))
	copy(poles, f.poles)
	return poles
}

// ProfilePlaneStrike computes the strike of the best-fit profile plane.
// Pairwise differences between poles scattered along a great-circle girdle
// concentrate along the girdle once consistently oriented; summing them
// after sign-aligning each with the horizontal line perpendicular to the
// average pole's trend recovers the girdle's strike. The computation is
// quadratic in the population size.
func (f *Fold) ProfilePlaneStrike() float64 {
	cosines := make([]orient.DirectionCosines, len(f.poles))
	for i, p := range f.poles {
		cosines[i] = p.DirectionCosines()
	}
	sort.SliceStable(cosines, func(i, j int) bool {
		return cosines[i].Down > cosines[j].Down
	})
	var sum orient.DirectionCosines
	for _, c := range cosines {
		sum = sum.Add(c)
	}
	avgPole := orient.NewLineFromDirectionCosines(sum)
	ref := orient.NewLine(0, avgPole.Trend()-math.Pi/2).DirectionCosines()

	var diffs orient.DirectionCosines
	for i, ci := range cosines {
		for _, cj := range cosines[i+1:] {
			d := cj.Sub(ci)
			if ref.Dot(d) < 0 {
				d = d.Neg()
			}
			diffs = diffs.Add(d)
		}
	}
	return orient.NewLineFromDirectionCosines(diffs).Trend()
}

// ProfilePlaneDip computes the dip of the best-fit profile plane for the
// given strike, searching candidate dips from -π/2 to π/2 in steps of
// increment. A candidate is accepted when exactly half of the poles,
// rotated about the strike line by the candidate dip, fall west; the
// accepted candidates are averaged. It returns ErrNoProfilePlane when no
// candidate splits the population in half.
func (f *Fold) ProfilePlaneDip(strike, increment float64) (float64, error) {
	if increment <= 0 {
		return 0, fmt.Errorf("fold: dip increment must be positive, got %g", increment)
	}
	axis := orient.NewLine(0, strike)
	halfPoints := int(math.Round(float64(len(f.poles)) / 2))
	var accepted []float64
	for dip := -math.Pi / 2; dip <= math.Pi/2; dip += increment {
		left := 0
		for _, pole := range f.poles {
			if pole.RotateAround(axis, dip).DirectionCosines().East < 0 {
				left++
			}
		}
		if left == halfPoints {
			accepted = append(accepted, dip)
		}
	}
	if len(accepted) == 0 {
		return 0, ErrNoProfilePlane
	}
	return stat.Mean(accepted, nil), nil
}

// ProfilePlane computes the best-fit profile plane through the poles,
// combining ProfilePlaneStrike with the dip search. dipIncrement is the
// search step; pass DefaultDipIncrement unless a finer or coarser search
// is wanted.
func (f *Fold) ProfilePlane(dipIncrement float64) (orient.Plane, error) {
	strike := f.ProfilePlaneStrike()
	dip, err := f.ProfilePlaneDip(strike, dipIncrement)
	if err != nil {
		return orient.Plane{}, err
	}
	return orient.NewPlane(strike, dip), nil
}

// AxialPlane computes the best-fit axial plane given the profile plane.
// The poles are rotated about the vertical axis by the negated profile
// strike so their spread runs north to south, sorted in that order, and
// averaged over a three-pole window at the limb boundary determined by
// the top-limb proportion; the axial plane spans the resulting midpoint
// line and the profile plane's pole.
func (f *Fold) AxialPlane(profile orient.Plane) (orient.Plane, error) {
	vertical := orient.NewLine(math.Pi/2, 0)
	cosines := make([]orient.DirectionCosines, len(f.poles))
	for i, pole := range f.poles {
		cosines[i] = pole.RotateAround(vertical, -profile.Strike()).DirectionCosines()
	}
	sort.SliceStable(cosines, func(i, j int) bool {
		return cosines[i].North > cosines[j].North
	})
	cutoff := int(math.Round(f.topLimbProportion * float64(len(f.poles))))
	lo := cutoff - 1
	if lo < 0 {
		lo = 0
	}
	hi := cutoff + 2
	if hi > len(cosines) {
		hi = len(cosines)
	}
	var sum orient.DirectionCosines
	for _, c := range cosines[lo:hi] {
		sum = sum.Add(c)
	}
	midpoint := orient.NewLineFromDirectionCosines(sum.Div(float64(hi - lo)))
	return orient.NewPlaneFromSpanning(midpoint, profile.Pole())
}
