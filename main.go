package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/jdeal-mediamath/clockwork"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"

	"psykar.com/wallrunner/internal/agent"
	"psykar.com/wallrunner/internal/scene"
	"psykar.com/wallrunner/internal/shape"
	"psykar.com/wallrunner/internal/texture"
	"psykar.com/wallrunner/internal/world"
)

const headingLength = 20

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if opts.debug {
		logrus.SetLevel(logrus.DebugLevel)
	}
	pixelgl.Run(func() {
		if err := run(opts); err != nil {
			logrus.WithError(err).Fatal("Wallrunner stopped.")
		}
	})
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Default()
	}
	return scene.Load(path)
}

// setup builds the world and the agent from the scene.
func setup(sc *scene.Scene, opts options) (*world.World, *agent.Agent, error) {
	w := world.New(opts.width, opts.height, sc.Background)
	w.Smooth = opts.smooth
	w.AddShapes(sc.Shapes...)

	start := sc.Start
	a, err := agent.New(start.Position, start.Facing, start.FieldOfView, start.MaxView)
	if err != nil {
		return nil, nil, err
	}
	body, err := agentBody(start.Radius)
	if err != nil {
		return nil, nil, fmt.Errorf("agent body: %w", err)
	}
	a.SetBody(body)
	a.SetBackground(colornames.Skyblue)
	return w, a, nil
}

// agentBody is a triangle pointing along +x with a spine from its center to
// the nose, so the heading shows in the top view.
func agentBody(radius float64) (*shape.Shape, error) {
	body, err := shape.NewRegularPolygon("agent", radius, 3, texture.Plain(colornames.Red))
	if err != nil {
		return nil, err
	}
	spine, err := shape.FromVertices("spine", []pixel.Vec{pixel.ZV, pixel.V(radius, 0)}, texture.Plain(colornames.Yellow))
	if err != nil {
		return nil, err
	}
	body.Append(spine)
	return body, nil
}

func run(opts options) error {
	log := logrus.WithField("component", "main")

	sc, err := loadScene(opts.scene)
	if err != nil {
		return err
	}
	w, a, err := setup(sc, opts)
	if err != nil {
		return err
	}

	cfg := pixelgl.WindowConfig{
		Title:  "Wallrunner",
		Bounds: pixel.R(0, 0, float64(opts.width), float64(opts.height+opts.viewHeight)),
		VSync:  opts.fps == 0,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return err
	}

	clock := clockwork.NewRealClock()
	pilot := NewPilot(a, w, clock, sc.Start.Step, sc.Start.TurnDeg, NewManualDriver(win))
	pilot.SetAutopilot(opts.autopilot)
	r := newRenderer(w, a, opts)

	heading := imdraw.New(nil)
	heading.Color = colornames.Yellow
	heading.EndShape = imdraw.RoundEndShape

	var frame time.Duration
	if opts.fps > 0 {
		frame = time.Second / time.Duration(opts.fps)
	}
	mode := viewBoth
	var topSprite, firstPersonSprite *pixel.Sprite

	log.WithFields(logrus.Fields{
		"walls":  len(w.Walls()),
		"width":  opts.width,
		"height": opts.height,
	}).Info("Starting.")

	for !win.Closed() {
		started := clock.Now()

		if win.JustPressed(pixelgl.KeyEscape) {
			win.SetClosed(true)
			continue
		}
		if win.JustPressed(pixelgl.KeyV) {
			mode = mode.next()
			log.WithField("mode", mode).Info("View mode changed.")
		}
		if win.JustPressed(pixelgl.KeyTab) {
			pilot.SetAutopilot(!pilot.Autopilot())
		}
		if win.JustPressed(pixelgl.KeyP) {
			log.Info("Agent state:\n" + spew.Sdump(a.Snapshot()))
		}
		if win.JustPressed(pixelgl.MouseButtonLeft) {
			log.WithField("at", r.screenToWorld(win.MousePosition())).Debug("Top view clicked.")
		}

		pilot.processStep()

		changed, err := r.render(mode)
		if err != nil {
			return err
		}
		if changed {
			if r.top != nil {
				topSprite = sprite(r.top.Picture())
			}
			if r.firstPerson != nil {
				firstPersonSprite = sprite(r.firstPerson.Picture())
			}
		}

		win.Clear(colornames.Black)
		if mode.showsTop() && topSprite != nil {
			drawFlipped(win, topSprite, pixel.V(float64(opts.width)/2, float64(opts.viewHeight)+float64(opts.height)/2))

			at := r.agentOnScreen()
			heading.Clear()
			heading.Push(at, at.Add(pixel.V(headingLength, 0).Rotated(-a.Facing().Rad())))
			heading.Line(2)
			heading.Draw(win)
		}
		if mode.showsFirstPerson() && firstPersonSprite != nil {
			drawFlipped(win, firstPersonSprite, pixel.V(float64(opts.width)/2, float64(opts.viewHeight)/2))
		}
		win.Update()

		if frame > 0 {
			if rest := frame - clock.Now().Sub(started); rest > 0 {
				clock.Sleep(rest)
			}
		}
	}
	log.Info("Window closed.")
	return nil
}

func sprite(pd *pixel.PictureData) *pixel.Sprite {
	return pixel.NewSprite(pd, pd.Bounds())
}

// drawFlipped draws a canvas sprite centered at pos. Canvas rows run top to
// bottom while window y grows upward.
func drawFlipped(t pixel.Target, s *pixel.Sprite, pos pixel.Vec) {
	s.Draw(t, pixel.IM.ScaledXY(pixel.ZV, pixel.V(1, -1)).Moved(pos))
}
