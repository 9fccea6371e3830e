package main

import (
	"testing"

	"github.com/creatumlibre/creatum"
	"github.com/creatumlibre/creatum/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newController(t *testing.T) *creatum.Controller {
	t.Helper()
	s := creatum.NewStack()
	base := creatum.NewPixmapFilled(40, 40, creatum.White)
	base.FillRect(creatum.Rect{X: 0, Y: 0, W: 10, H: 10}, creatum.Red)
	require.NoError(t, s.LoadBaseImage(base))
	return creatum.NewController(s)
}

func TestRunMoveSelection(t *testing.T) {
	ctl := newController(t)
	require.NoError(t, run(ctl, script{rect: "0,0,10,10", move: "20,20"}))

	base := ctl.Stack().Base().Pixels()
	assert.Equal(t, 1, ctl.Stack().Len())
	assert.Equal(t, creatum.Red, base.GetPixel(25, 25))
	assert.Equal(t, creatum.Red, base.GetPixel(5, 5))
}

func TestRunPolygonAdjustDuplicate(t *testing.T) {
	ctl := newController(t)
	err := run(ctl, script{polygon: "0,0;9,0;9,9;0,9", adjust: "red=-1", duplicate: "15,0"})
	require.NoError(t, err)

	s := ctl.Stack()
	assert.Equal(t, 2, s.Len(), "pasted copy stays a separate layer")
	assert.Nil(t, s.Promoted())
	assert.Equal(t, creatum.RGB{}, s.Base().Pixels().GetPixel(2, 2))

	s.ClearSelection()
	assert.Equal(t, creatum.RGB{}, s.Render().GetPixel(17, 2))
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		sc   script
	}{
		{"bad rect", script{rect: "1,2,3"}},
		{"empty rect", script{rect: "5,5,0,0"}},
		{"bad polygon", script{polygon: "1,1;2"}},
		{"bad move", script{rect: "0,0,5,5", move: "x,1"}},
		{"bad adjust", script{rect: "0,0,5,5", adjust: "blur=1"}},
		{"adjust without value", script{rect: "0,0,5,5", adjust: "red"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, run(newController(t), tt.sc))
		})
	}
	assert.NoError(t, run(newController(t), script{}))
}

func TestParseInts(t *testing.T) {
	v, err := parseInts(" 1, -2 ,3", ",", 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, -2, 3}, v)

	_, err = parseInts("1,2", ",", 3)
	assert.Error(t, err)
}

func TestFrameColors(t *testing.T) {
	colors := frameColors(config.Default())
	assert.Equal(t, creatum.Yellow, colors[creatum.TransformNone])
	assert.Equal(t, creatum.Magenta, colors[creatum.TransformScale])
}
