package creatum

// Interaction tracks one pointer gesture: press, any number of moves, and
// release. Deltas are always measured from the press position, so they do
// not drift over many move events.
//
// The zero Interaction is idle with a drag threshold of 0; use
// NewInteraction for the default threshold.
type Interaction struct {
	start       Point
	last        Point
	active      bool
	dragStarted bool
	clicked     *Layer
	threshold   int
}

// NewInteraction returns an idle interaction with the given drag threshold.
func NewInteraction(threshold int) *Interaction {
	return &Interaction{threshold: max(threshold, 0)}
}

// Begin starts a gesture at pos. clicked is the layer under the pointer,
// or nil.
func (in *Interaction) Begin(pos Point, clicked *Layer) {
	in.start = pos
	in.last = pos
	in.active = true
	in.dragStarted = false
	in.clicked = clicked
}

// Update records the pointer at pos and returns the delta from the press
// position. Once the pointer has travelled more than the threshold along
// either axis the gesture counts as a drag for the rest of its life.
// Without a preceding Begin the zero delta is returned.
func (in *Interaction) Update(pos Point) Point {
	if !in.active {
		return Point{}
	}
	delta := pos.Sub(in.start)
	d := delta.Abs()
	if d.X > in.threshold || d.Y > in.threshold {
		in.dragStarted = true
	}
	in.last = pos
	return delta
}

// Reset returns the interaction to idle.
func (in *Interaction) Reset() {
	threshold := in.threshold
	*in = Interaction{threshold: threshold}
}

// Active reports whether a gesture is in progress.
func (in *Interaction) Active() bool { return in.active }

// DragStarted reports whether the current gesture has become a drag.
func (in *Interaction) DragStarted() bool { return in.dragStarted }

// StartPos returns the press position.
func (in *Interaction) StartPos() Point { return in.start }

// LastPos returns the most recent pointer position.
func (in *Interaction) LastPos() Point { return in.last }

// ClickedObject returns the layer that was under the pointer at press time.
func (in *Interaction) ClickedObject() *Layer { return in.clicked }

// Threshold returns the drag threshold.
func (in *Interaction) Threshold() int { return in.threshold }

// IsClickOnSelectedObject reports whether the gesture started on a layer
// that is currently selected.
func (in *Interaction) IsClickOnSelectedObject() bool {
	return in.clicked != nil && in.clicked.selected
}
