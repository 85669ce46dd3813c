// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package runtime

import "fmt"

// Position is a 1-based line:column location, returned by
// Engine.PositionAt for diagnostics; the hot path tracks row/col on Engine
// directly rather than going through this lookup.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// lineIndex records the byte offset of the start of each line as an Engine
// scans past it, and answers Position lookups for arbitrary earlier
// offsets by binary search. Adapted from db47h/lex's File type: that type
// wrapped a streaming io.Reader and re-seeked to fetch line text, which
// Engine has no need for since its whole input is materialized upfront
// (spec.md's Lexer holds "input: the full text"), so this keeps only the
// offset table and the search.
type lineIndex struct {
	starts []int // starts[i] = byte offset of line i+1 (1-based lines, 0-based slice)
}

func newLineIndex() *lineIndex {
	return &lineIndex{starts: []int{0}}
}

// advance records that a new line begins at pos. Must be called with
// non-decreasing pos.
func (li *lineIndex) advance(pos int) {
	li.starts = append(li.starts, pos)
}

// positionOf converts a byte offset into a Position by binary search over
// recorded line starts.
func (li *lineIndex) positionOf(pos int) Position {
	i, j := 0, len(li.starts)
	for i < j {
		h := int(uint(i+j) >> 1)
		if li.starts[h] <= pos {
			i = h + 1
		} else {
			j = h
		}
	}
	return Position{Line: i, Column: pos - li.starts[i-1] + 1}
}
