package creatum

// DefaultDragThreshold is the pointer travel, in pixels along either axis,
// beyond which a press becomes a drag.
const DefaultDragThreshold = 2

// StackOption configures a Stack during creation.
//
// Example:
//
//	s := creatum.NewStack(creatum.WithZoom(0.5))
type StackOption func(*stackOptions)

type stackOptions struct {
	zoom   float64
	colors FrameColors
}

func defaultStackOptions() stackOptions {
	return stackOptions{
		zoom:   1,
		colors: DefaultFrameColors(),
	}
}

// WithZoom sets the initial presentation zoom factor. Non-positive values
// are ignored.
func WithZoom(zoom float64) StackOption {
	return func(o *stackOptions) {
		if zoom > 0 {
			o.zoom = zoom
		}
	}
}

// WithFrameColors overrides the selection frame palette. Modes missing from
// colors keep their default colour.
func WithFrameColors(colors FrameColors) StackOption {
	return func(o *stackOptions) {
		for mode, c := range colors {
			o.colors[mode] = c
		}
	}
}

// ControllerOption configures a Controller during creation.
type ControllerOption func(*controllerOptions)

type controllerOptions struct {
	dragThreshold int
}

func defaultControllerOptions() controllerOptions {
	return controllerOptions{dragThreshold: DefaultDragThreshold}
}

// WithDragThreshold sets the drag threshold used by the controller's
// interaction state. Negative values are ignored.
func WithDragThreshold(px int) ControllerOption {
	return func(o *controllerOptions) {
		if px >= 0 {
			o.dragThreshold = px
		}
	}
}
