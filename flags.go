package main

import (
	"errors"
	"flag"
	"io"
)

type options struct {
	scene      string
	width      int
	height     int
	viewHeight int
	scale      float64
	fps        int
	autopilot  bool
	smooth     bool
	debug      bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("wallrunner", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&o.scene, "scene", "", "scene YAML file; the built-in room when empty")
	fs.IntVar(&o.width, "width", 780, "top view width in pixels")
	fs.IntVar(&o.height, "height", 520, "top view height in pixels")
	fs.IntVar(&o.viewHeight, "view-height", 128, "first person view height in pixels")
	fs.Float64Var(&o.scale, "scale", 1, "top view zoom; anything but 1 follows the agent")
	fs.IntVar(&o.fps, "fps", 60, "frame rate cap, 0 to sync with the display")
	fs.BoolVar(&o.autopilot, "autopilot", false, "start with the neural autopilot driving")
	fs.BoolVar(&o.smooth, "smooth", false, "antialias walls in the top view")
	fs.BoolVar(&o.debug, "debug", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	switch {
	case o.width <= 0 || o.height <= 0:
		return o, errors.New("width and height must be positive")
	case o.viewHeight <= 0:
		return o, errors.New("view-height must be positive")
	case !(o.scale > 0):
		return o, errors.New("scale must be positive")
	case o.fps < 0:
		return o, errors.New("fps must not be negative")
	}
	return o, nil
}
