package domain

// Size is the board edge length; BoxSize the edge of one 3x3 box.
const (
	Size    = 9
	BoxSize = 3
	Cells   = Size * Size
)

// Board holds current cell values and which cells are fixed givens.
// A value of 0 means empty. Legality of placements is not enforced here;
// that is the solver's job through its constraint index.
type Board struct {
	Values [Size][Size]uint8 `json:"board"`
	Fixed  [Size][Size]bool  `json:"fixed,omitempty"`
}

// Get returns the value at (row, col). Out-of-range indices panic.
func (b *Board) Get(row, col int) uint8 {
	checkBounds(row, col)
	return b.Values[row][col]
}

// Set writes v at (row, col). Out-of-range indices or v > 9 panic:
// they are contract violations, not recoverable runtime conditions.
func (b *Board) Set(row, col int, v uint8) {
	checkBounds(row, col)
	if v > Size {
		panic("domain: cell value out of range")
	}
	b.Values[row][col] = v
}

// IsFull reports whether no cell is empty.
func (b *Board) IsFull() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.Values[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// Clone returns an independent copy.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

// Equal compares cell values only, ignoring the given mask.
func (b *Board) Equal(other *Board) bool {
	return other != nil && b.Values == other.Values
}

// CountClues returns the number of non-empty cells.
func (b *Board) CountClues() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.Values[r][c] != 0 {
				n++
			}
		}
	}
	return n
}

func checkBounds(row, col int) {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		panic("domain: cell index out of range")
	}
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is a generated Sudoku with its metadata and full solution.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	Solution   Board      `json:"solution,omitempty"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}

// Hint describes a strategy suggestion for the shell.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []CellCoord  `json:"cells,omitempty"`
	Digit    uint8        `json:"digit,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}
