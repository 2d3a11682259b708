package domain

// Size is the grid dimension; BoxSize is the side of one sub-box.
const (
	Size    = 9
	BoxSize = 3 // sqrt(Size)
)

// Cell holds a single grid value. Empty marks an unfilled cell; filled
// cells hold 1..9. The named type keeps the empty sentinel out of raw
// arithmetic in callers.
type Cell uint8

// Empty is the unfilled-cell sentinel.
const Empty Cell = 0

// IsEmpty reports whether the cell is unfilled.
func (c Cell) IsEmpty() bool { return c == Empty }

// Board holds current values and which cells are fixed givens.
type Board struct {
	Values [Size][Size]Cell `json:"board"`
	Fixed  [Size][Size]bool `json:"fixed,omitempty"`
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	out := *b
	return &out
}

// MarkGivens flags every currently filled cell as a fixed given.
func (b *Board) MarkGivens() {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			b.Fixed[r][c] = !b.Values[r][c].IsEmpty()
		}
	}
}

// CellCoord identifies a cell on the board. Coordinates are 0-based.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a strategy suggestion for the player.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Value    Cell         `json:"value,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// StrategyTier limits hinting/logic complexity used.
type StrategyTier int

const (
	StrategySingles StrategyTier = iota // singles / sole candidates
	StrategyPairs                       // naked/hidden pairs
	StrategyAdvanced                    // pointing/claiming, triples, etc.
)

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Board     Board  `json:"board"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
