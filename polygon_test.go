package creatum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRasterizePolygonSquare(t *testing.T) {
	square := []Point{Pt(10, 10), Pt(20, 10), Pt(20, 20), Pt(10, 20)}
	m := RasterizePolygon(square, 30, 30)

	covered := 0
	for _, v := range m.Data() {
		if v == 1 {
			covered++
		}
	}
	assert.Equal(t, 100, covered)
	assert.Equal(t, float32(1), m.At(10, 10))
	assert.Equal(t, float32(1), m.At(19, 19))
	assert.Equal(t, float32(0), m.At(20, 20))
	assert.Equal(t, float32(0), m.At(9, 15))
}

func TestRasterizePolygonTriangle(t *testing.T) {
	tri := []Point{Pt(0, 0), Pt(20, 0), Pt(0, 20)}
	m := RasterizePolygon(tri, 20, 20)

	assert.Equal(t, float32(1), m.At(2, 2), "inside near right angle")
	assert.Equal(t, float32(0), m.At(18, 18), "beyond hypotenuse")
}

func TestRasterizePolygonClipsToBounds(t *testing.T) {
	big := []Point{Pt(-10, -10), Pt(50, -10), Pt(50, 50), Pt(-10, 50)}
	m := RasterizePolygon(big, 8, 8)
	for _, v := range m.Data() {
		assert.Equal(t, float32(1), v)
	}
}

func TestRasterizePolygonDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
	}{
		{"empty", nil},
		{"two points", []Point{Pt(1, 1), Pt(5, 5)}},
		{"flat", []Point{Pt(1, 3), Pt(5, 3), Pt(9, 3)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := RasterizePolygon(tt.points, 10, 10)
			for _, v := range m.Data() {
				assert.Zero(t, v)
			}
		})
	}
}
