package creatum

import "slices"

// Tool is the input mode currently owned by a Controller.
type Tool int

// Tools.
const (
	// ToolIdle ignores pointer input.
	ToolIdle Tool = iota
	// ToolSelectRegion drags out a rectangle and lifts it into a floating
	// selection on release.
	ToolSelectRegion
	// ToolPointCloud collects one polygon vertex per press until
	// FinishPointCloud is called.
	ToolPointCloud
	// ToolMoveObjects selects layers by click and drags selected layers.
	// A press on the floating selection grabs it ahead of the layers below.
	ToolMoveObjects
)

// String returns the tool name.
func (t Tool) String() string {
	switch t {
	case ToolIdle:
		return "Idle"
	case ToolSelectRegion:
		return "SelectRegion"
	case ToolPointCloud:
		return "PointCloud"
	case ToolMoveObjects:
		return "MoveObjects"
	default:
		return "Unknown"
	}
}

// Controller translates pointer and key gestures into Stack operations.
// It owns the current tool, the gesture state and the clipboard; the stack
// is supplied by the caller and never reaches back to the controller.
//
// Positions passed to a Controller are scene coordinates.
type Controller struct {
	stack       *Stack
	tool        Tool
	interaction *Interaction
	clipboard   *Layer
	points      []Point

	additive        bool
	pressedSelected bool
}

// NewController creates an idle controller driving stack.
func NewController(stack *Stack, opts ...ControllerOption) *Controller {
	o := defaultControllerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Controller{
		stack:       stack,
		interaction: NewInteraction(o.dragThreshold),
	}
}

// Stack returns the driven stack.
func (c *Controller) Stack() *Stack { return c.stack }

// Interaction returns the gesture state.
func (c *Controller) Interaction() *Interaction { return c.interaction }

// Tool returns the current tool.
func (c *Controller) Tool() Tool { return c.tool }

// SetTool switches tools, abandoning any gesture or point cloud in progress.
func (c *Controller) SetTool(t Tool) {
	c.tool = t
	c.interaction.Reset()
	c.points = nil
}

// Clipboard returns the clipboard layer, or nil.
func (c *Controller) Clipboard() *Layer { return c.clipboard }

// Points returns the polygon vertices collected so far.
func (c *Controller) Points() []Point { return c.points }

// Press handles a pointer press at pos. additive is true when the
// multi-select modifier is held.
func (c *Controller) Press(pos Point, additive bool) {
	switch c.tool {
	case ToolSelectRegion:
		c.interaction.Begin(pos, nil)
	case ToolPointCloud:
		c.points = append(c.points, pos)
	case ToolMoveObjects:
		hit := c.stack.PickAt(pos)
		c.interaction.Begin(pos, hit)
		c.additive = additive
		c.pressedSelected = c.interaction.IsClickOnSelectedObject()
		if !c.pressedSelected {
			c.stack.SelectLayer(hit, additive)
		}
		c.stack.CommitMove()
	}
}

// Move handles pointer motion and returns the delta from the press point.
func (c *Controller) Move(pos Point) Point {
	if !c.interaction.Active() {
		return Point{}
	}
	delta := c.interaction.Update(pos)
	if c.tool == ToolMoveObjects && c.interaction.DragStarted() {
		c.stack.UpdateSelectedPosition(delta)
	}
	return delta
}

// Release ends the gesture at pos. For ToolSelectRegion the dragged
// rectangle is extracted and the floating selection returned.
func (c *Controller) Release(pos Point) *Layer {
	if !c.interaction.Active() {
		return nil
	}
	c.Move(pos)
	defer c.interaction.Reset()

	switch c.tool {
	case ToolSelectRegion:
		c.tool = ToolIdle
		return c.extractRect(NormalizeRect(c.interaction.StartPos(), pos))
	case ToolMoveObjects:
		if c.interaction.DragStarted() {
			c.stack.CommitMove()
		} else if c.pressedSelected {
			// The press kept the group for a possible drag; a plain click
			// now narrows the selection, an additive one toggles.
			c.stack.SelectLayer(c.interaction.ClickedObject(), c.additive)
		}
	}
	return nil
}

// SelectionPreview returns the rectangle being dragged by ToolSelectRegion
// in scene coordinates, and whether a drag is in progress.
func (c *Controller) SelectionPreview() (Rect, bool) {
	if c.tool != ToolSelectRegion || !c.interaction.Active() {
		return Rect{}, false
	}
	return NormalizeRect(c.interaction.StartPos(), c.interaction.LastPos()), true
}

// FinishPointCloud closes the collected polygon and lifts it into a
// floating selection. Fewer than three points select nothing.
func (c *Controller) FinishPointCloud() *Layer {
	if c.tool != ToolPointCloud {
		return nil
	}
	points := c.points
	c.SetTool(ToolIdle)
	if len(points) < 3 {
		return nil
	}
	c.stack.MergeSelection()
	active := c.stack.ActiveObject()
	if active == nil {
		return nil
	}
	local := slices.Clone(points)
	for i, p := range local {
		local[i] = active.ToLocal(p)
	}
	return c.stack.ExtractPolygon(local)
}

func (c *Controller) extractRect(r Rect) *Layer {
	if r.Empty() {
		return nil
	}
	c.stack.MergeSelection()
	active := c.stack.ActiveObject()
	if active == nil {
		return nil
	}
	return c.stack.ExtractSelection(r.Offset(Point{}.Sub(active.position)))
}

// Cancel abandons the current tool and gesture, clears the selection and
// discards the floating selection.
func (c *Controller) Cancel() {
	c.SetTool(ToolIdle)
	c.stack.ClearSelection()
	c.stack.ClearPromoted()
}

// Copy places a clone of the floating selection on the clipboard and
// reports whether there was one to copy.
func (c *Controller) Copy(cut bool) bool {
	clip := c.stack.CopyPromoted(cut)
	if clip == nil {
		return false
	}
	c.clipboard = clip
	return true
}

// Paste pushes the clipboard onto the stack as a selected layer.
func (c *Controller) Paste() *Layer {
	return c.stack.Paste(c.clipboard)
}

// MergeFloating merges the floating selection down.
func (c *Controller) MergeFloating() bool {
	return c.stack.MergeSelection()
}

// Adjust applies a colour adjustment. See Stack.Adjust.
func (c *Controller) Adjust(kind Adjustment, param float64) bool {
	return c.stack.Adjust(kind, param)
}
