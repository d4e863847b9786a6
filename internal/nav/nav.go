package nav

import "math"

// Region is one of the three stacked panels. Together they form a
// single column-aligned space: container-service strip on top,
// pull-request strip in the middle, workflow grid at the bottom.
type Region int

const (
	RegionServices Region = iota
	RegionPulls
	RegionRuns
)

func (r Region) String() string {
	switch r {
	case RegionServices:
		return "services"
	case RegionPulls:
		return "pull-requests"
	case RegionRuns:
		return "workflows"
	}
	return "unknown"
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Counts is the navigable item count per region in one snapshot.
type Counts struct {
	Services int
	Pulls    int
	Runs     int
}

func (c Counts) of(r Region) int {
	switch r {
	case RegionServices:
		return c.Services
	case RegionPulls:
		return c.Pulls
	}
	return c.Runs
}

// State is the cursor: the active region plus one remembered index per
// region, so leaving and re-entering a strip restores its position.
// The zero value selects the first workflow cell.
type State struct {
	Region Region
	Idx    [3]int
}

// Index is the active region's index.
func (s State) Index() int {
	return s.Idx[s.Region]
}

// IndexOf is a region's remembered index, active or not.
func (s State) IndexOf(r Region) int {
	return s.Idx[r]
}

// Initial puts the cursor on the first item of the lowest populated
// region, preferring the grid.
func Initial(c Counts) State {
	s := State{Region: RegionRuns}
	switch {
	case c.Runs > 0:
	case c.Pulls > 0:
		s.Region = RegionPulls
	case c.Services > 0:
		s.Region = RegionServices
	}
	return s
}

// GridCols is the workflow grid column count: min(ceil(sqrt(n)), 3),
// with a single item collapsing to one column.
func GridCols(n int) int {
	if n <= 1 {
		return 1
	}
	cols := int(math.Ceil(math.Sqrt(float64(n))))
	if cols > 3 {
		cols = 3
	}
	return cols
}

// GridRows is ceil(n/cols).
func GridRows(n int) int {
	if n == 0 {
		return 0
	}
	cols := GridCols(n)
	return (n + cols - 1) / cols
}

// GridPos splits a grid index into row and column for n runs.
func GridPos(idx, n int) (row, col int) {
	cols := GridCols(n)
	return idx / cols, idx % cols
}

// Move translates one directional input into a cursor transition.
// Out-of-bounds targets are no-ops: the outer edges of the combined
// space never wrap. The strips are circular left/right; the grid is
// not, and a grid target past the last item (the partially filled final
// row) is rejected rather than landing on empty space. Returns the new
// state and whether it differs from the old one.
func Move(s State, d Direction, c Counts) (State, bool) {
	if c.of(s.Region) == 0 {
		// stale cursor in an emptied region; Clamp owns repairs
		return s, false
	}
	if s.Region == RegionRuns {
		return moveGrid(s, d, c)
	}
	return moveStrip(s, d, c)
}

func moveStrip(s State, d Direction, c Counts) (State, bool) {
	r := s.Region
	n := c.of(r)
	idx := s.Idx[r]

	switch d {
	case Left:
		s.Idx[r] = (idx - 1 + n) % n
		return s, n > 1
	case Right:
		s.Idx[r] = (idx + 1) % n
		return s, n > 1
	case Up:
		if r == RegionPulls && c.Services > 0 {
			s.Region = RegionServices
			s.Idx[RegionServices] = clampIdx(idx, c.Services)
			return s, true
		}
		return s, false
	case Down:
		// either strip drops straight into the grid, keeping the
		// column clamped into range
		if c.Runs > 0 {
			s.Region = RegionRuns
			s.Idx[RegionRuns] = enterGridColumn(idx, c.Runs)
			return s, true
		}
		return s, false
	}
	return s, false
}

// enterGridColumn lands on row 0, preserving the column index clamped
// into the top row's cell count.
func enterGridColumn(col, n int) int {
	cols := GridCols(n)
	if col > cols-1 {
		col = cols - 1
	}
	if col > n-1 {
		col = n - 1
	}
	return col
}

func moveGrid(s State, d Direction, c Counts) (State, bool) {
	n := c.Runs
	cols := GridCols(n)
	idx := s.Idx[RegionRuns]
	row, col := idx/cols, idx%cols

	switch d {
	case Left:
		if col > 0 {
			s.Idx[RegionRuns] = idx - 1
			return s, true
		}
	case Right:
		if col < cols-1 && idx+1 < n {
			s.Idx[RegionRuns] = idx + 1
			return s, true
		}
	case Up:
		if row > 0 {
			s.Idx[RegionRuns] = idx - cols
			return s, true
		}
		if c.Pulls > 0 {
			s.Region = RegionPulls
			s.Idx[RegionPulls] = clampIdx(col, c.Pulls)
			return s, true
		}
		if c.Services > 0 {
			s.Region = RegionServices
			s.Idx[RegionServices] = clampIdx(col, c.Services)
			return s, true
		}
	case Down:
		if idx+cols < n {
			s.Idx[RegionRuns] = idx + cols
			return s, true
		}
	}
	return s, false
}

func clampIdx(idx, n int) int {
	if idx > n-1 {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Clamp revalidates the cursor after a snapshot swap or re-layout.
// Every region's remembered index is pulled into range, keeping its
// position rather than resetting to zero, and a cursor sitting in a
// now-empty region falls to the next populated one: runs, then pulls,
// then services. Returns the repaired state and whether anything
// changed, so the caller can log the violation.
func Clamp(s State, c Counts) (State, bool) {
	orig := s
	for r := RegionServices; r <= RegionRuns; r++ {
		n := c.of(r)
		if n == 0 {
			s.Idx[r] = 0
			continue
		}
		s.Idx[r] = clampIdx(s.Idx[r], n)
	}
	if c.of(s.Region) == 0 {
		switch {
		case c.Runs > 0:
			s.Region = RegionRuns
		case c.Pulls > 0:
			s.Region = RegionPulls
		case c.Services > 0:
			s.Region = RegionServices
		}
	}
	return s, s != orig
}
