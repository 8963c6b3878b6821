package appbar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnforceThickness(t *testing.T) {
	in := Rect{Left: 10, Top: 20, Right: 1910, Bottom: 1040}

	tests := []struct {
		edge Edge
		want Rect
	}{
		{EdgeTop, Rect{Left: 10, Top: 20, Right: 1910, Bottom: 70}},
		{EdgeBottom, Rect{Left: 10, Top: 990, Right: 1910, Bottom: 1040}},
		{EdgeLeft, Rect{Left: 10, Top: 20, Right: 60, Bottom: 1040}},
		{EdgeRight, Rect{Left: 1860, Top: 20, Right: 1910, Bottom: 1040}},
	}

	for _, tt := range tests {
		t.Run(tt.edge.String(), func(t *testing.T) {
			got := EnforceThickness(in, tt.edge, 50)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, EnforceThickness(got, tt.edge, 50), "second application should be a no-op")
		})
	}
}

func TestEnforceThicknessPreservesOtherCoordinates(t *testing.T) {
	rects := []Rect{
		{Left: 0, Top: 0, Right: 1920, Bottom: 1080},
		{Left: -1280, Top: -40, Right: 0, Bottom: 984},
		{Left: 5, Top: 5, Right: 6, Bottom: 6},
		{Left: 100, Top: 100, Right: 50, Bottom: 50},
	}
	thicknesses := []int32{1, 40, 2000}

	for _, rc := range rects {
		for _, th := range thicknesses {
			top := EnforceThickness(rc, EdgeTop, th)
			assert.Equal(t, [3]int32{rc.Left, rc.Top, rc.Right}, [3]int32{top.Left, top.Top, top.Right})
			assert.Equal(t, th, top.Height())

			bottom := EnforceThickness(rc, EdgeBottom, th)
			assert.Equal(t, [3]int32{rc.Left, rc.Right, rc.Bottom}, [3]int32{bottom.Left, bottom.Right, bottom.Bottom})
			assert.Equal(t, th, bottom.Height())

			left := EnforceThickness(rc, EdgeLeft, th)
			assert.Equal(t, [3]int32{rc.Left, rc.Top, rc.Bottom}, [3]int32{left.Left, left.Top, left.Bottom})
			assert.Equal(t, th, left.Width())

			right := EnforceThickness(rc, EdgeRight, th)
			assert.Equal(t, [3]int32{rc.Top, rc.Right, rc.Bottom}, [3]int32{right.Top, right.Right, right.Bottom})
			assert.Equal(t, th, right.Width())
		}
	}
}

func TestResultFromRect(t *testing.T) {
	res := ResultFromRect(Rect{Left: 1890, Top: 0, Right: 1920, Bottom: 1080})
	assert.Equal(t, Result{X: 1890, Y: 0, Width: 30, Height: 1080}, res)
	assert.Equal(t, "1890 0 30 1080", res.String())
}

func TestRectIntersects(t *testing.T) {
	screen := Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}
	assert.True(t, screen.Intersects(Rect{Left: 90, Top: 90, Right: 110, Bottom: 110}))
	assert.False(t, screen.Intersects(Rect{Left: 100, Top: 0, Right: 120, Bottom: 100}), "touching edges do not overlap")
	assert.True(t, Rect{Left: 0, Top: 0, Right: 0, Bottom: 10}.Empty())
}

func TestRectEmpty(t *testing.T) {
	assert.False(t, Rect{Right: 1920, Bottom: 40}.Empty())
	assert.True(t, Rect{Right: 1920}.Empty())
	assert.True(t, Rect{Left: 100, Right: 100, Bottom: 40}.Empty())
	// Bottom wrapped past MaxInt32: Height() overflows back to a positive value.
	wrapped := Rect{Left: 0, Top: 48, Right: 1920, Bottom: -2147483601}
	assert.Positive(t, wrapped.Height())
	assert.True(t, wrapped.Empty())
}
