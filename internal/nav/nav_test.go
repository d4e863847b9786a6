package nav

import (
	"math/rand"
	"testing"
)

func TestGridCols(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 2},
		{5, 3},
		{6, 3},
		{9, 3},
		{10, 3},
		{16, 3},
	}
	for _, tt := range tests {
		if got := GridCols(tt.n); got != tt.want {
			t.Errorf("GridCols(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestGridRows(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{0, 0},
		{1, 1},
		{4, 2},
		{5, 2},
		{7, 3},
		{9, 3},
		{10, 4},
	}
	for _, tt := range tests {
		if got := GridRows(tt.n); got != tt.want {
			t.Errorf("GridRows(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func gridState(idx int) State {
	s := State{Region: RegionRuns}
	s.Idx[RegionRuns] = idx
	return s
}

func stripState(r Region, idx int) State {
	s := State{Region: r}
	s.Idx[r] = idx
	return s
}

func TestRegionCrossingUpFromGridTopRow(t *testing.T) {
	tests := []struct {
		name       string
		counts     Counts
		wantRegion Region
		wantMove   bool
	}{
		{
			name:       "no pulls and no services is a no-op",
			counts:     Counts{Runs: 6},
			wantRegion: RegionRuns,
			wantMove:   false,
		},
		{
			name:       "pulls win when populated",
			counts:     Counts{Runs: 6, Pulls: 3},
			wantRegion: RegionPulls,
			wantMove:   true,
		},
		{
			name:       "services catch when pulls are empty",
			counts:     Counts{Runs: 6, Services: 2},
			wantRegion: RegionServices,
			wantMove:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, moved := Move(gridState(1), Up, tt.counts)
			if moved != tt.wantMove {
				t.Fatalf("moved = %v, want %v", moved, tt.wantMove)
			}
			if got.Region != tt.wantRegion {
				t.Errorf("region = %v, want %v", got.Region, tt.wantRegion)
			}
		})
	}
}

func TestUpFromGridPreservesColumn(t *testing.T) {
	// 7 runs: 3 columns. Cell 2 is row 0, column 2.
	counts := Counts{Runs: 7, Pulls: 2}
	got, moved := Move(gridState(2), Up, counts)
	if !moved || got.Region != RegionPulls {
		t.Fatalf("got %+v moved=%v, want pulls", got, moved)
	}
	// Column 2 clamps into the 2-item strip.
	if got.Index() != 1 {
		t.Errorf("strip index = %d, want clamped column 1", got.Index())
	}
}

func TestUpFromPullsEntersServices(t *testing.T) {
	got, moved := Move(stripState(RegionPulls, 3), Up, Counts{Runs: 4, Pulls: 5, Services: 2})
	if !moved || got.Region != RegionServices {
		t.Fatalf("got %+v moved=%v, want services", got, moved)
	}
	if got.Index() != 1 {
		t.Errorf("services index = %d, want clamped 1", got.Index())
	}

	// Topmost populated strip has no upward exit.
	_, moved = Move(stripState(RegionPulls, 0), Up, Counts{Runs: 4, Pulls: 5})
	if moved {
		t.Error("up from pulls without services must be a no-op")
	}
	_, moved = Move(stripState(RegionServices, 0), Up, Counts{Runs: 4, Pulls: 5, Services: 2})
	if moved {
		t.Error("up from services must be a no-op")
	}
}

func TestDownFromEitherStripEntersGrid(t *testing.T) {
	counts := Counts{Runs: 2, Pulls: 4, Services: 3}

	// From pulls, preserving the column clamped to the 2-column grid.
	got, moved := Move(stripState(RegionPulls, 3), Down, counts)
	if !moved || got.Region != RegionRuns {
		t.Fatalf("got %+v moved=%v, want runs", got, moved)
	}
	if got.Index() != 1 {
		t.Errorf("grid index = %d, want clamped column 1", got.Index())
	}

	// From services the grid is also the direct target.
	got, moved = Move(stripState(RegionServices, 0), Down, counts)
	if !moved || got.Region != RegionRuns {
		t.Fatalf("got %+v moved=%v, want runs", got, moved)
	}
	if got.Index() != 0 {
		t.Errorf("grid index = %d, want column 0", got.Index())
	}

	// No grid, no exit.
	_, moved = Move(stripState(RegionPulls, 1), Down, Counts{Pulls: 4})
	if moved {
		t.Error("down with an empty grid must be a no-op")
	}
}

func TestStripWraparound(t *testing.T) {
	counts := Counts{Services: 3, Runs: 1}

	got, _ := Move(stripState(RegionServices, 0), Left, counts)
	if got.Index() != 2 {
		t.Errorf("left from 0 = %d, want wrap to 2", got.Index())
	}
	got, _ = Move(stripState(RegionServices, 2), Right, counts)
	if got.Index() != 0 {
		t.Errorf("right from 2 = %d, want wrap to 0", got.Index())
	}

	// A single-item strip wraps onto itself, which is not a move.
	single := Counts{Pulls: 1, Runs: 1}
	got, moved := Move(stripState(RegionPulls, 0), Left, single)
	if moved || got.Index() != 0 {
		t.Errorf("left in single-item strip = (%d, %v), want no-op", got.Index(), moved)
	}
}

func TestGridEdgesDoNotWrap(t *testing.T) {
	// 6 runs: 3 columns, 2 full rows.
	counts := Counts{Runs: 6}

	if _, moved := Move(gridState(0), Left, counts); moved {
		t.Error("left at row start must not wrap")
	}
	if _, moved := Move(gridState(2), Right, counts); moved {
		t.Error("right at row end must not wrap")
	}
	if _, moved := Move(gridState(4), Down, counts); moved {
		t.Error("down from the bottom row must be a no-op")
	}

	got, moved := Move(gridState(1), Right, counts)
	if !moved || got.Index() != 2 {
		t.Errorf("right within a row = (%d, %v), want 2", got.Index(), moved)
	}
	got, moved = Move(gridState(5), Up, counts)
	if !moved || got.Index() != 2 {
		t.Errorf("up within the grid = (%d, %v), want 2", got.Index(), moved)
	}
}

func TestGridRejectsMovesPastLastItem(t *testing.T) {
	// 5 runs: 3 columns, final row holds cells 3 and 4 only.
	counts := Counts{Runs: 5}

	// Down from row 0 column 2 would land on the missing cell 5.
	if _, moved := Move(gridState(2), Down, counts); moved {
		t.Error("move onto an empty trailing cell must be rejected")
	}
	// Right from cell 4 would leave the populated range.
	if _, moved := Move(gridState(4), Right, counts); moved {
		t.Error("right past the last item must be rejected")
	}
	// The same moves succeed where the target exists.
	if got, moved := Move(gridState(1), Down, counts); !moved || got.Index() != 4 {
		t.Errorf("down onto an existing cell = (%d, %v), want 4", got.Index(), moved)
	}
}

func TestMoveInEmptyRegionIsNoOp(t *testing.T) {
	s := gridState(0)
	for _, d := range []Direction{Up, Down, Left, Right} {
		if _, moved := Move(s, d, Counts{}); moved {
			t.Errorf("move %v with zero items must be a no-op", d)
		}
	}
}

func TestClampKeepsValidPositions(t *testing.T) {
	s := gridState(4)
	got, changed := Clamp(s, Counts{Runs: 6, Pulls: 2})
	if changed {
		t.Errorf("valid state must pass through untouched, got %+v", got)
	}
	if got.Index() != 4 {
		t.Errorf("index = %d, want 4 preserved", got.Index())
	}
}

func TestClampPullsIndexIntoRangeNotToZero(t *testing.T) {
	// Run count shrank under the cursor; position clamps to the last
	// cell instead of silently resetting to the first.
	got, changed := Clamp(gridState(9), Counts{Runs: 4})
	if !changed {
		t.Fatal("out-of-range index must be repaired")
	}
	if got.Index() != 3 {
		t.Errorf("index = %d, want clamped to 3", got.Index())
	}
}

func TestClampLeavesEmptiedRegion(t *testing.T) {
	tests := []struct {
		name   string
		start  State
		counts Counts
		want   Region
	}{
		{"falls to runs first", stripState(RegionPulls, 2), Counts{Runs: 2, Services: 1}, RegionRuns},
		{"then pulls", gridState(1), Counts{Pulls: 3}, RegionPulls},
		{"then services", stripState(RegionPulls, 2), Counts{Services: 1}, RegionServices},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := Clamp(tt.start, tt.counts)
			if !changed {
				t.Fatal("cursor in an emptied region must be repaired")
			}
			if got.Region != tt.want {
				t.Errorf("region = %v, want %v", got.Region, tt.want)
			}
		})
	}
}

func TestClampAllEmpty(t *testing.T) {
	got, _ := Clamp(gridState(5), Counts{})
	if got.Index() != 0 {
		t.Errorf("index = %d, want reset with nothing selectable", got.Index())
	}
}

// Random walk over moves and snapshot swaps: after every step the
// active index is in range or its region holds zero items.
func TestCursorNeverOutOfRange(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	dirs := []Direction{Up, Down, Left, Right}

	counts := Counts{Services: 2, Pulls: 3, Runs: 7}
	s := Initial(counts)

	for step := 0; step < 2000; step++ {
		if rng.Intn(6) == 0 {
			counts = Counts{
				Services: rng.Intn(4),
				Pulls:    rng.Intn(5),
				Runs:     rng.Intn(12),
			}
			s, _ = Clamp(s, counts)
		} else {
			s, _ = Move(s, dirs[rng.Intn(len(dirs))], counts)
		}

		for _, r := range []Region{RegionServices, RegionPulls, RegionRuns} {
			n := counts.of(r)
			idx := s.IndexOf(r)
			if n == 0 {
				continue
			}
			if idx < 0 || idx >= n {
				t.Fatalf("step %d: region %v index %d out of range [0,%d)", step, r, idx, n)
			}
		}
		if n := counts.of(s.Region); n == 0 && (counts.Services+counts.Pulls+counts.Runs) > 0 {
			t.Fatalf("step %d: cursor stranded in empty region %v", step, s.Region)
		}
	}
}
