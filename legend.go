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
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Legend is the text printed above one key.
type Legend struct {
	Code int
	Text string
}

// LegendTable maps key codes to legend texts.
// Keys without an entry have an empty legend.
type LegendTable map[int]string

// DuplicateKeyError is returned by [NewLegendTable] when a key code
// occurs more than once.
type DuplicateKeyError struct {
	Code          int
	First, Second string
}

func (err *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate legend for key %d: %q and %q",
		err.Code, err.First, err.Second)
}

// NewLegendTable creates a legend table from a list of entries.
// Every key code must occur at most once.
func NewLegendTable(entries ...Legend) (LegendTable, error) {
	t := make(LegendTable, len(entries))
	for _, e := range entries {
		if prev, seen := t[e.Code]; seen {
			return nil, &DuplicateKeyError{Code: e.Code, First: prev, Second: e.Text}
		}
		t[e.Code] = e.Text
	}
	return t, nil
}

func mustLegendTable(entries ...Legend) LegendTable {
	t, err := NewLegendTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the legend for the given key code.
// The second return value indicates whether an entry was found.
func (t LegendTable) Lookup(code int) (string, bool) {
	text, ok := t[code]
	return text, ok
}

// Codes returns the key codes of all entries, in increasing order.
func (t LegendTable) Codes() []int {
	codes := maps.Keys(t)
	slices.Sort(codes)
	return codes
}

// Len returns the number of entries in the table.
func (t LegendTable) Len() int {
	return len(t)
}

// All legends except those of the first six keys are shared by both
// legend sets.
var commonLegends = []Legend{
	{17, "MASKL"}, {18, "MASKR"}, {19, "RMD"}, {10, "XOR"},

	{21, "x<>(i)"}, {22, "x<>I"}, {23, "SH HEX"}, {24, "SH DEC"}, {25, "SH OCT"},
	{26, "SH BIN"}, {27, "SB"}, {28, "CB"}, {29, "B?"}, {20, "AND"},

	{31, "(i)"}, {32, "I"}, {33, "CL PRGM"}, {34, "CL REG"}, {35, "CL PRFX"},
	{36, "WINDOW"}, {37, "1s COMP"}, {38, "2s COMP"}, {39, "UNSIGNED"}, {30, "NOT"},

	{41, ""}, {42, ""}, {43, ""}, {44, "WSIZE"}, {45, "FLOAT"},
	{47, "MEM"}, {48, "STATUS"}, {49, "EEX"}, {40, "OR"},
}

// MathLegends has inverse trigonometric and other mathematical functions
// on the first six keys.
var MathLegends = mustLegendTable(append([]Legend{
	{11, "ln e^x"}, {12, "log 10^x"}, {13, "? fact"},
	{14, "sin -1"}, {15, "cos -1"}, {16, "tan -1"},
}, commonLegends...)...)

// BitLegends has the shift and rotate operations on the first six keys.
var BitLegends = mustLegendTable(append([]Legend{
	{11, "SL"}, {12, "SR"}, {13, "RL"}, {14, "RR"}, {15, "RLn"}, {16, "RRn"},
}, commonLegends...)...)

// LegendSets lists the available legend tables by name.
var LegendSets = map[string]LegendTable{
	"bit":  BitLegends,
	"math": MathLegends,
}
