package plot

import (
	"math"
	"sync"
	"testing"
)

func testBounds(v float64) AxesBounds[float64, float64] {
	return NewAxesBounds(MustAxisRange(v, v+1), MustAxisRange(v, v+1))
}

func TestAxesModelAtomicBoundsSwap(t *testing.T) {
	m := NewAxesModel(testBounds(0), GridModel{XDivisions: 1, YDivisions: 1})

	// Writers always install bounds where the x and y ranges agree; a
	// torn read would pair an old x with a new y.
	stop := make(chan struct{})
	var writer sync.WaitGroup
	writer.Add(1)
	go func() {
		defer writer.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
				m.SetBounds(testBounds(float64(i % 100)))
			}
		}
	}()

	var readers sync.WaitGroup
	for r := 0; r < 4; r++ {
		readers.Add(1)
		go func() {
			defer readers.Done()
			for i := 0; i < 10000; i++ {
				b := m.Bounds()
				if b.X.Min() != b.Y.Min() {
					t.Errorf("torn bounds read: x=%v y=%v", b.X, b.Y)
					return
				}
				if b.X.Span() != 1 {
					t.Errorf("torn range read: %v", b.X)
					return
				}
			}
		}()
	}

	readers.Wait()
	close(stop)
	writer.Wait()
}

func TestAxesModelPan(t *testing.T) {
	m := NewAxesModel(
		NewAxesBounds(MustAxisRange(0.0, 10.0), MustAxisRange(0.0, 1.0)),
		GridModel{},
	)
	m.Pan(0.1, 0)

	b := m.Bounds()
	if math.Abs(b.X.Min()-1) > tol || math.Abs(b.X.Max()-11) > tol {
		t.Errorf("x after pan = %v, want [1, 11]", b.X)
	}
	if b.Y.Min() != 0 || b.Y.Max() != 1 {
		t.Errorf("y after pan = %v, want [0, 1]", b.Y)
	}
}

func TestAxesModelZoom(t *testing.T) {
	m := NewAxesModel(
		NewAxesBounds(MustAxisRange(0.0, 10.0), MustAxisRange(-2.0, 2.0)),
		GridModel{},
	)
	m.Zoom(0.5)

	b := m.Bounds()
	if math.Abs(b.X.Min()-2.5) > tol || math.Abs(b.X.Max()-7.5) > tol {
		t.Errorf("x after zoom = %v, want [2.5, 7.5]", b.X)
	}
	if math.Abs(b.Y.Min()+1) > tol || math.Abs(b.Y.Max()-1) > tol {
		t.Errorf("y after zoom = %v, want [-1, 1]", b.Y)
	}

	// Non-positive factors are ignored.
	before := m.Bounds()
	m.Zoom(0)
	m.Zoom(-2)
	if m.Bounds() != before {
		t.Error("invalid zoom factor mutated bounds")
	}
}

func TestAxesModelNotify(t *testing.T) {
	m := NewAxesModel(testBounds(0), GridModel{})

	var calls int
	m.SetNotify(func() { calls++ })

	m.SetBounds(testBounds(1))
	m.SetGrid(GridModel{XDivisions: 2, YDivisions: 2})
	m.Pan(0.5, 0)
	m.Zoom(2)

	if calls != 4 {
		t.Errorf("notify calls = %d, want 4", calls)
	}

	m.SetNotify(nil)
	m.SetBounds(testBounds(2))
	if calls != 4 {
		t.Errorf("notify called after removal: %d", calls)
	}
}

func TestAxesModelSetGrid(t *testing.T) {
	m := NewAxesModel(testBounds(0), GridModel{XDivisions: 1, YDivisions: 1})
	m.SetGrid(GridModel{XDivisions: 5, YDivisions: 7})

	g := m.Grid()
	if g.XDivisions != 5 || g.YDivisions != 7 {
		t.Errorf("grid = %+v, want {5 7}", g)
	}
}
