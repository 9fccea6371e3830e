package creatum

import (
	"fmt"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"golang.org/x/text/cases"
)

// Adjustment identifies a colour adjustment.
type Adjustment int

// Adjustment kinds. Brightness, Contrast, Saturation and Gamma take a factor
// where 1 leaves the image unchanged. Hue takes a rotation in degrees. Red,
// Green and Blue take an offset in [-1, 1] that is scaled to 0..255 and
// added to the channel.
const (
	AdjustBrightness Adjustment = iota
	AdjustContrast
	AdjustSaturation
	AdjustGamma
	AdjustHue
	AdjustRed
	AdjustGreen
	AdjustBlue

	adjustmentCount
)

// AdjustFunc is a pure adjustment: it returns a new pixmap and leaves src
// untouched.
type AdjustFunc func(src *Pixmap, param float64) *Pixmap

var adjustmentNames = [adjustmentCount]string{
	AdjustBrightness: "Brightness",
	AdjustContrast:   "Contrast",
	AdjustSaturation: "Saturation",
	AdjustGamma:      "Gamma",
	AdjustHue:        "Hue",
	AdjustRed:        "Red",
	AdjustGreen:      "Green",
	AdjustBlue:       "Blue",
}

var adjustmentFuncs = [adjustmentCount]AdjustFunc{
	AdjustBrightness: func(src *Pixmap, f float64) *Pixmap {
		return FromImage(adjust.Brightness(src.ToImage(), f-1))
	},
	AdjustContrast: func(src *Pixmap, f float64) *Pixmap {
		return FromImage(adjust.Contrast(src.ToImage(), f-1))
	},
	AdjustSaturation: func(src *Pixmap, f float64) *Pixmap {
		return FromImage(adjust.Saturation(src.ToImage(), f-1))
	},
	AdjustGamma: func(src *Pixmap, g float64) *Pixmap {
		if g <= 0 {
			return src.Clone()
		}
		return FromImage(adjust.Gamma(src.ToImage(), g))
	},
	AdjustHue: func(src *Pixmap, deg float64) *Pixmap {
		return FromImage(adjust.Hue(src.ToImage(), int(deg)))
	},
	AdjustRed:   channelOffset(0),
	AdjustGreen: channelOffset(1),
	AdjustBlue:  channelOffset(2),
}

// adjustmentByName is keyed by case-folded name.
var adjustmentByName = func() map[string]Adjustment {
	fold := cases.Fold()
	m := make(map[string]Adjustment, adjustmentCount)
	for k, name := range adjustmentNames {
		m[fold.String(name)] = Adjustment(k)
	}
	return m
}()

// ParseAdjustment looks up an adjustment by name, ignoring case.
func ParseAdjustment(name string) (Adjustment, error) {
	if k, ok := adjustmentByName[cases.Fold().String(name)]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("creatum: unknown adjustment %q", name)
}

// String returns the adjustment name.
func (k Adjustment) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Adjustment(%d)", int(k))
	}
	return adjustmentNames[k]
}

// Valid reports whether k is a known adjustment.
func (k Adjustment) Valid() bool {
	return k >= 0 && k < adjustmentCount
}

// Func returns the adjustment function, or nil for an unknown kind.
func (k Adjustment) Func() AdjustFunc {
	if !k.Valid() {
		return nil
	}
	return adjustmentFuncs[k]
}

// Apply runs the adjustment on src. It returns nil for an unknown kind or
// a nil src.
func (k Adjustment) Apply(src *Pixmap, param float64) *Pixmap {
	fn := k.Func()
	if fn == nil || src == nil {
		return nil
	}
	return fn(src, param)
}

// channelOffset adds v*255 to one RGB channel, clamping to 0..255.
func channelOffset(channel int) AdjustFunc {
	return func(src *Pixmap, v float64) *Pixmap {
		off := v * 255
		shift := func(c uint8) uint8 {
			return uint8(math.Max(0, math.Min(255, float64(c)+off)))
		}
		out := adjust.Apply(src.ToImage(), func(c color.RGBA) color.RGBA {
			switch channel {
			case 0:
				c.R = shift(c.R)
			case 1:
				c.G = shift(c.G)
			default:
				c.B = shift(c.B)
			}
			return c
		})
		return FromImage(out)
	}
}
