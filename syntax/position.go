// Copyright 2024 The esfront Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syntax

import "fmt"

// A Position describes the location of a rune of input.
//
// A Position packs a 1-based line and column into a single word: the
// line occupies the high 32 bits and the column the low 32 bits, so
// comparing two Positions as integers orders them as in the source.
// The zero Position is not valid.
type Position uint64

// MakePosition returns the position with the specified line and column.
func MakePosition(line, col int32) Position {
	return Position(uint64(uint32(line))<<32 | uint64(uint32(col)))
}

// Line returns the 1-based line number of the position.
func (p Position) Line() int32 { return int32(p >> 32) }

// Col returns the 1-based column of the position.
func (p Position) Col() int32 { return int32(uint32(p)) }

// IsValid reports whether the position is valid.
func (p Position) IsValid() bool { return p.Line() >= 1 }

// Before reports whether p precedes q in the source.
func (p Position) Before(q Position) bool { return p < q }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line(), p.Col())
}

// An Extent records the begin and end positions of a node.
// It is embedded in every node.
type Extent struct {
	Begin, End Position
}

// MakeExtent returns the extent [begin, end).
func MakeExtent(begin, end Position) Extent { return Extent{Begin: begin, End: end} }

func (x *Extent) Span() (start, end Position) { return x.Begin, x.End }
