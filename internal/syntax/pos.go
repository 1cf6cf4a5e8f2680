package syntax

import "fmt"

// Pos represents a position in a BL source file.
// The zero value is an invalid position; tokens that come from a
// pre-split token queue carry only an index in col.
type Pos struct {
	filename string // source file name
	line     uint32 // 1-based line number, 0 for queue positions
	col      uint32 // 1-based column, or 1-based token index for queues
}

// NoPos is the zero Pos. Nodes built outside the parser use it.
var NoPos Pos

// NewPos creates a new Pos with the given filename, line, and column.
func NewPos(filename string, line, col uint32) Pos {
	return Pos{filename: filename, line: line, col: col}
}

// tokenPos returns the position of the i-th token (1-based) of a token queue.
func tokenPos(i int) Pos {
	return Pos{filename: "tokens", col: uint32(i)}
}

// String returns "filename:line:col", "line:col" without a filename,
// "tokens#N" for queue positions and "-" for NoPos.
func (p Pos) String() string {
	switch {
	case p.line == 0 && p.col == 0:
		return "-"
	case p.line == 0:
		return fmt.Sprintf("%s#%d", p.filename, p.col)
	case p.filename != "":
		return fmt.Sprintf("%s:%d:%d", p.filename, p.line, p.col)
	}
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsValid reports whether the position refers to a source location.
func (p Pos) IsValid() bool {
	return p.line > 0 || p.col > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 { return p.line }

// Col returns the 1-based column number.
func (p Pos) Col() uint32 { return p.col }

// Filename returns the source file name.
func (p Pos) Filename() string { return p.filename }
