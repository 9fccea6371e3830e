// Package creatum is the document core of a raster image editor: a stack of
// positioned layers, alpha compositing, and rectangle or polygon selections
// that float above the image until they are merged back down.
//
// # Quick Start
//
//	import "github.com/creatumlibre/creatum"
//
//	s := creatum.NewStack()
//	if err := s.LoadBaseImageFile("photo.png"); err != nil {
//		return err
//	}
//
//	// Lift a rectangle off the base image, move it and drop it.
//	floating := s.ExtractSelection(creatum.Rect{X: 10, Y: 10, W: 64, H: 64})
//	floating.SetPosition(creatum.Pt(200, 120))
//	s.MergeSelection()
//
//	_ = creatum.SaveImage(s.Render(), "out.png", 0)
//
// # Layers
//
// Index 0 of a Stack is the base layer. It is composited first, it cannot be
// deleted, and pointer hit tests never return it. Every other layer carries
// a Region with a float mask in [0, 1]; the mask is the layer's alpha when
// it is merged. At most one layer is promoted: the floating selection.
//
// # Interaction
//
// A Controller turns press, move and release events into stack operations
// for the current Tool. Drag deltas are always measured from the press
// point, so moving a group of layers never drifts.
//
// # Coordinate System
//
// Scene coordinates have the origin at the top-left of the base layer, X to
// the right and Y down. Region coordinates are local to the owning layer's
// pixel buffer; Layer.ToLocal converts between the two.
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive diagnostics
// through log/slog.
package creatum

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
