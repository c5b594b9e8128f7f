package rules

// Direction names one of the four orthogonal neighbors of a cell.
type Direction int

const (
	// Up is the neighbor at (x, y−1).
	Up Direction = iota
	// Down is the neighbor at (x, y+1).
	Down
	// Left is the neighbor at (x−1, y).
	Left
	// Right is the neighbor at (x+1, y).
	Right
)

// Directions lists all four directions in a fixed order.
var Directions = [4]Direction{Up, Down, Left, Right}

var (
	opposite = [4]Direction{Down, Up, Right, Left}
	offsets  = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	names    = [4]string{"up", "down", "left", "right"}
)

// Opposite returns the direction pointing back.
func (d Direction) Opposite() Direction { return opposite[d] }

// Offset returns the (dx, dy) step for d.
func (d Direction) Offset() (dx, dy int) { return offsets[d][0], offsets[d][1] }

func (d Direction) String() string {
	if d < Up || d > Right {
		return "unknown"
	}
	return names[d]
}
