// Command creatum applies a scripted edit to an image: lift a selection into
// a floating layer, move or recolour it, optionally duplicate it, merge it
// down and save the composite.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/creatumlibre/creatum"
	"github.com/creatumlibre/creatum/internal/config"
)

func main() {
	var (
		in      = flag.String("in", "", "input image")
		output  = flag.String("out", "out.png", "output file")
		cfgPath = flag.String("config", "", "settings file (.toml or .yaml)")
		selRect = flag.String("select", "", "rectangle selection x,y,w,h")
		polygon = flag.String("polygon", "", "polygon selection x,y;x,y;x,y...")
		move    = flag.String("move", "", "move the floating selection by dx,dy")
		adjust  = flag.String("adjust", "", "adjust the floating selection, kind=value")
		dup     = flag.String("duplicate", "", "paste a copy of the selection offset by dx,dy")
		zoom    = flag.Float64("zoom", 0, "output zoom factor (overrides config)")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	creatum.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *in == "" {
		log.Fatal("missing -in")
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *zoom > 0 {
		cfg.Zoom = *zoom
	}

	stack := creatum.NewStack(creatum.WithZoom(cfg.Zoom), creatum.WithFrameColors(frameColors(cfg)))
	if err := stack.LoadBaseImageFile(*in); err != nil {
		log.Fatalf("Failed to load: %v", err)
	}
	ctl := creatum.NewController(stack, creatum.WithDragThreshold(cfg.DragThreshold))

	if err := run(ctl, script{
		rect: *selRect, polygon: *polygon, move: *move, adjust: *adjust, duplicate: *dup,
	}); err != nil {
		log.Fatal(err)
	}

	stack.ClearSelection()
	if err := creatum.SaveImage(creatum.FromImage(stack.RenderZoomed()), *output, cfg.JPEGQuality); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Result saved to %s (%d layers)\n", *output, stack.Len())
}

// script is the edit requested on the command line, as raw flag values.
type script struct {
	rect, polygon, move, adjust, duplicate string
}

// run replays the script as pointer gestures against the controller.
func run(ctl *creatum.Controller, sc script) error {
	switch {
	case sc.rect != "":
		v, err := parseInts(sc.rect, ",", 4)
		if err != nil {
			return fmt.Errorf("-select: %w", err)
		}
		ctl.SetTool(creatum.ToolSelectRegion)
		ctl.Press(creatum.Pt(v[0], v[1]), false)
		ctl.Move(creatum.Pt(v[0]+v[2], v[1]+v[3]))
		ctl.Release(creatum.Pt(v[0]+v[2], v[1]+v[3]))
	case sc.polygon != "":
		ctl.SetTool(creatum.ToolPointCloud)
		for _, pair := range strings.Split(sc.polygon, ";") {
			v, err := parseInts(pair, ",", 2)
			if err != nil {
				return fmt.Errorf("-polygon: %w", err)
			}
			ctl.Press(creatum.Pt(v[0], v[1]), false)
			ctl.Release(creatum.Pt(v[0], v[1]))
		}
		ctl.FinishPointCloud()
	default:
		return nil
	}

	floating := ctl.Stack().Promoted()
	if floating == nil {
		return fmt.Errorf("selection is empty")
	}
	if sc.move != "" {
		v, err := parseInts(sc.move, ",", 2)
		if err != nil {
			return fmt.Errorf("-move: %w", err)
		}
		floating.SetPosition(floating.Position().Add(creatum.Pt(v[0], v[1])))
	}
	if sc.adjust != "" {
		name, value, ok := strings.Cut(sc.adjust, "=")
		if !ok {
			return fmt.Errorf("-adjust: want kind=value, got %q", sc.adjust)
		}
		kind, err := creatum.ParseAdjustment(name)
		if err != nil {
			return fmt.Errorf("-adjust: %w", err)
		}
		param, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("-adjust: %w", err)
		}
		ctl.Adjust(kind, param)
	}
	if sc.duplicate != "" {
		v, err := parseInts(sc.duplicate, ",", 2)
		if err != nil {
			return fmt.Errorf("-duplicate: %w", err)
		}
		ctl.Copy(false)
		if pasted := ctl.Paste(); pasted != nil {
			pasted.SetPosition(pasted.Position().Add(creatum.Pt(v[0], v[1])))
		}
	}
	ctl.MergeFloating()
	return nil
}

func parseInts(s, sep string, n int) ([]int, error) {
	parts := strings.Split(s, sep)
	if len(parts) != n {
		return nil, fmt.Errorf("want %d values, got %q", n, s)
	}
	out := make([]int, n)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func frameColors(cfg config.Config) creatum.FrameColors {
	colors := creatum.FrameColors{}
	if rgb, err := config.ParseHex(cfg.Frame.Floating); err == nil {
		colors[creatum.TransformNone] = creatum.RGB{R: rgb[0], G: rgb[1], B: rgb[2]}
	}
	if rgb, err := config.ParseHex(cfg.Frame.Selected); err == nil {
		colors[creatum.TransformScale] = creatum.RGB{R: rgb[0], G: rgb[1], B: rgb[2]}
	}
	return colors
}
