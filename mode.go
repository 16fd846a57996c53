// seehuhn.de/go/overlay - printable keypad overlays for calculators
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package overlay

import (
	"errors"
	"fmt"
)

// Mode selects which parts of the overlay are drawn.
type Mode int

// These are the supported output modes.
const (
	// ModeCut draws only the key outlines, for the cutting plotter.
	ModeCut Mode = iota + 1

	// ModePrint draws the registration marks and the legends, for the
	// printer.
	ModePrint

	// ModeAll draws everything on one page.  This is useful for proofing.
	ModeAll
)

func (m Mode) String() string {
	switch m {
	case ModeCut:
		return "cut"
	case ModePrint:
		return "print"
	case ModeAll:
		return "all"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Options gives the flags which control the renderers.
type Options struct {
	ShowOutlines          bool
	ShowRegistrationMarks bool
	ShowLegends           bool
}

// Options returns the renderer flags for the mode.
func (m Mode) Options() Options {
	switch m {
	case ModeCut:
		return Options{ShowOutlines: true}
	case ModePrint:
		return Options{ShowRegistrationMarks: true, ShowLegends: true}
	case ModeAll:
		return Options{ShowOutlines: true, ShowRegistrationMarks: true, ShowLegends: true}
	default:
		return Options{}
	}
}

// Errors returned by [SelectMode] and [SelectModel].
var (
	ErrConflictingModes  = errors.New("conflicting output modes")
	ErrNoMode            = errors.New("no output mode selected")
	ErrConflictingModels = errors.New("conflicting calculator models")
)

// SelectMode returns the mode corresponding to a set of command line flags.
// Exactly one of the flags must be set.
func SelectMode(cut, print, all bool) (Mode, error) {
	flags := []struct {
		set  bool
		mode Mode
	}{
		{cut, ModeCut},
		{print, ModePrint},
		{all, ModeAll},
	}

	var res Mode
	for _, f := range flags {
		if !f.set {
			continue
		}
		if res != 0 {
			return 0, fmt.Errorf("%w: %q and %q", ErrConflictingModes, res, f.mode)
		}
		res = f.mode
	}
	if res == 0 {
		return 0, ErrNoMode
	}
	return res, nil
}

// Model is a calculator model supported by this package.
type Model struct {
	// Name is used in the names of output files.
	Name string

	// Description is a human readable description of the model.
	Description string

	Geometry *OverlayGeometry
}

// The supported calculator models.
var (
	Voyager = &Model{
		Name:        "voyager",
		Description: "HP Voyager series",
		Geometry:    &HPVoyager,
	}
	DM1xL = &Model{
		Name:        "dm1xl",
		Description: "SwissMicros DM1xL series",
		Geometry:    &SwissMicrosDM1xL,
	}
)

// SelectModel returns the calculator model corresponding to a set of
// command line flags.  At most one flag may be set, the default is
// [Voyager].
func SelectModel(hp, sm bool) (*Model, error) {
	switch {
	case hp && sm:
		return nil, fmt.Errorf("%w: %q and %q", ErrConflictingModels, Voyager.Name, DM1xL.Name)
	case sm:
		return DM1xL, nil
	default:
		return Voyager, nil
	}
}

// OutputName returns the default file name for an overlay PDF.
func OutputName(model *Model, mode Mode) string {
	return model.Name + "-overlay-" + mode.String() + ".pdf"
}
