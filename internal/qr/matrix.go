package qr

import (
	"fmt"
	"strings"
)

// Level is the error-correction level requested from the encoder.
type Level int

const (
	LevelL Level = iota // ~7% recovery
	LevelM              // ~15% recovery
	LevelQ              // ~25% recovery
	LevelH              // ~30% recovery
)

// ParseLevel maps "L", "M", "Q" and "H" (any case) to a Level.
// Anything else falls back to LevelM.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return LevelL
	case "Q":
		return LevelQ
	case "H":
		return LevelH
	default:
		return LevelM
	}
}

func (l Level) String() string {
	switch l {
	case LevelL:
		return "L"
	case LevelQ:
		return "Q"
	case LevelH:
		return "H"
	default:
		return "M"
	}
}

// Role tells which part of the symbol a module belongs to.
type Role int

const (
	RoleData Role = iota
	RoleFinder
	RoleTiming
)

func (r Role) String() string {
	switch r {
	case RoleFinder:
		return "finder"
	case RoleTiming:
		return "timing"
	default:
		return "data"
	}
}

// finderSize is the side of the three corner position markers.
const finderSize = 7

// minModules is the side of a version 1 symbol.
const minModules = 21

// Matrix is the square module grid produced by an encoder, indexed
// [row][col] with 0,0 at the top-left corner. It is read-only.
type Matrix struct {
	size int
	bits []bool
}

// NewMatrix copies rows into a Matrix. The grid must be square with an odd
// side of at least 21 modules.
func NewMatrix(rows [][]bool) (*Matrix, error) {
	n := len(rows)
	if n < minModules || n%2 == 0 {
		return nil, fmt.Errorf("%w: matrix side %d is not an odd number >= %d", ErrEncoding, n, minModules)
	}

	bits := make([]bool, n*n)
	for r, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d modules, want %d", ErrEncoding, r, len(row), n)
		}
		copy(bits[r*n:], row)
	}
	return &Matrix{size: n, bits: bits}, nil
}

// Size returns the number of modules per side.
func (m *Matrix) Size() int { return m.size }

// IsSet reports whether the module at (row, col) is dark.
// Positions outside the grid are light.
func (m *Matrix) IsSet(row, col int) bool {
	if row < 0 || col < 0 || row >= m.size || col >= m.size {
		return false
	}
	return m.bits[row*m.size+col]
}

// Role classifies (row, col) by position only.
func (m *Matrix) Role(row, col int) Role {
	n := m.size
	top := row < finderSize
	left := col < finderSize
	if (top && left) || (top && col >= n-finderSize) || (row >= n-finderSize && left) {
		return RoleFinder
	}
	// Timing patterns run between the separators of the finders.
	if row == finderSize-1 && col > finderSize && col < n-finderSize-1 {
		return RoleTiming
	}
	if col == finderSize-1 && row > finderSize && row < n-finderSize-1 {
		return RoleTiming
	}
	return RoleData
}

// Rows returns a copy of the grid.
func (m *Matrix) Rows() [][]bool {
	rows := make([][]bool, m.size)
	for r := range rows {
		rows[r] = make([]bool, m.size)
		copy(rows[r], m.bits[r*m.size:(r+1)*m.size])
	}
	return rows
}
