package creatum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteractionIdle(t *testing.T) {
	in := NewInteraction(DefaultDragThreshold)
	assert.False(t, in.Active())
	assert.Equal(t, Point{}, in.Update(Pt(10, 10)))
	assert.False(t, in.DragStarted())
	assert.False(t, in.IsClickOnSelectedObject())

	var zero Interaction
	assert.Equal(t, Point{}, zero.Update(Pt(3, 3)))
	assert.Zero(t, zero.Threshold())
}

func TestInteractionNegativeThreshold(t *testing.T) {
	assert.Zero(t, NewInteraction(-5).Threshold())
}

// TestInteractionDeltaFromStart checks that deltas never accumulate.
func TestInteractionDeltaFromStart(t *testing.T) {
	in := NewInteraction(2)
	in.Begin(Pt(100, 100), nil)

	moves := []struct {
		pos  Point
		want Point
	}{
		{Pt(101, 100), Pt(1, 0)},
		{Pt(105, 98), Pt(5, -2)},
		{Pt(105, 98), Pt(5, -2)},
		{Pt(90, 120), Pt(-10, 20)},
		{Pt(100, 100), Pt(0, 0)},
	}
	for _, m := range moves {
		assert.Equal(t, m.want, in.Update(m.pos))
		assert.Equal(t, m.pos, in.LastPos())
	}
	assert.Equal(t, Pt(100, 100), in.StartPos())
}

func TestInteractionThreshold(t *testing.T) {
	tests := []struct {
		name string
		pos  Point
		drag bool
	}{
		{"still", Pt(0, 0), false},
		{"at threshold x", Pt(2, 0), false},
		{"at threshold both", Pt(-2, 2), false},
		{"past threshold x", Pt(3, 0), true},
		{"past threshold y", Pt(0, -3), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInteraction(2)
			in.Begin(Pt(0, 0), nil)
			in.Update(tt.pos)
			assert.Equal(t, tt.drag, in.DragStarted())
		})
	}
}

func TestInteractionDragIsSticky(t *testing.T) {
	in := NewInteraction(2)
	in.Begin(Pt(0, 0), nil)
	in.Update(Pt(10, 0))
	in.Update(Pt(0, 0))
	assert.True(t, in.DragStarted())

	in.Begin(Pt(5, 5), nil)
	assert.False(t, in.DragStarted(), "new gesture starts fresh")
}

func TestInteractionReset(t *testing.T) {
	l := newTestLayer(t, 4, 4, Red, Point{})
	in := NewInteraction(7)
	in.Begin(Pt(1, 2), l)
	in.Update(Pt(20, 2))

	in.Reset()
	assert.False(t, in.Active())
	assert.False(t, in.DragStarted())
	assert.Nil(t, in.ClickedObject())
	assert.Equal(t, 7, in.Threshold())
}

func TestInteractionClickOnSelected(t *testing.T) {
	l := newTestLayer(t, 4, 4, Red, Point{})
	in := NewInteraction(2)

	in.Begin(Pt(1, 1), l)
	assert.Same(t, l, in.ClickedObject())
	assert.False(t, in.IsClickOnSelectedObject())

	l.SetSelected(true)
	assert.True(t, in.IsClickOnSelectedObject())
}
