package creatum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdjustment(t *testing.T) {
	tests := []struct {
		in   string
		want Adjustment
	}{
		{"Brightness", AdjustBrightness},
		{"contrast", AdjustContrast},
		{"SATURATION", AdjustSaturation},
		{"gamma", AdjustGamma},
		{"Hue", AdjustHue},
		{"red", AdjustRed},
		{"Green", AdjustGreen},
		{"bLuE", AdjustBlue},
	}
	for _, tt := range tests {
		got, err := ParseAdjustment(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseAdjustment("sharpen")
	assert.Error(t, err)
}

func TestAdjustmentString(t *testing.T) {
	assert.Equal(t, "Gamma", AdjustGamma.String())
	assert.Equal(t, "Adjustment(99)", Adjustment(99).String())
	assert.False(t, Adjustment(-1).Valid())
	assert.Nil(t, Adjustment(99).Func())
}

func TestAdjustmentLeavesSourceUntouched(t *testing.T) {
	src := NewPixmapFilled(8, 8, RGB{100, 120, 140})
	want := src.Clone()

	for k := range adjustmentCount {
		out := k.Apply(src, 1.5)
		require.NotNil(t, out, k.String())
		assert.NotSame(t, src, out)
		assert.Equal(t, src.Size(), out.Size())
		assert.True(t, want.Equal(src), "%v modified its input", k)
	}
}

func TestAdjustBrightness(t *testing.T) {
	src := NewPixmapFilled(4, 4, RGB{100, 100, 100})

	brighter := AdjustBrightness.Apply(src, 1.5).GetPixel(1, 1)
	assert.Greater(t, brighter.R, uint8(100))

	darker := AdjustBrightness.Apply(src, 0.5).GetPixel(1, 1)
	assert.Less(t, darker.R, uint8(100))
}

func TestAdjustGammaNonPositive(t *testing.T) {
	src := NewPixmapFilled(4, 4, RGB{10, 20, 30})
	out := AdjustGamma.Apply(src, 0)
	assert.True(t, src.Equal(out))
	assert.NotSame(t, src, out)
}

func TestAdjustChannelOffset(t *testing.T) {
	src := NewPixmapFilled(2, 2, RGB{100, 200, 50})
	tests := []struct {
		kind  Adjustment
		param float64
		want  RGB
	}{
		{AdjustRed, 0.5, RGB{227, 200, 50}},
		{AdjustRed, 1, RGB{255, 200, 50}},
		{AdjustGreen, 0.5, RGB{100, 255, 50}},
		{AdjustGreen, -1, RGB{100, 0, 50}},
		{AdjustBlue, -0.1, RGB{100, 200, 24}},
		{AdjustBlue, 0, RGB{100, 200, 50}},
	}
	for _, tt := range tests {
		got := tt.kind.Apply(src, tt.param).GetPixel(1, 0)
		assert.Equal(t, tt.want, got, "%v %v", tt.kind, tt.param)
	}
}

func TestAdjustApplyNil(t *testing.T) {
	assert.Nil(t, AdjustHue.Apply(nil, 90))
	assert.Nil(t, Adjustment(42).Apply(NewPixmap(2, 2), 1))
}
