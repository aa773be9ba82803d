package main

import (
	"time"

	"github.com/faiface/pixel"
	"github.com/jdeal-mediamath/clockwork"
	"github.com/sirupsen/logrus"

	"psykar.com/wallrunner/internal/agent"
	"psykar.com/wallrunner/internal/motion"
	"psykar.com/wallrunner/internal/world"
)

const (
	turnDuration = 150 * time.Millisecond
	// the autopilot has to get this many steps away within stallTimeout
	stallSteps   = 4
	stallTimeout = 3 * time.Second
)

var moves = []struct {
	cmd command
	dir agent.Direction
}{
	{cmdForward, agent.Forward},
	{cmdBackward, agent.Backward},
	{cmdLeft, agent.Left},
	{cmdRight, agent.Right},
}

// Pilot applies a driver's commands to the agent once per frame and keeps the
// agent's wall snapshot fresh.
type Pilot struct {
	agent *agent.Agent
	world *world.World
	clock clockwork.Clock

	step    float64
	turnDeg float64
	turner  *motion.Turner

	manual    Driver
	autopilot NeuralDriver
	auto      bool

	last time.Time

	// where and against which world the snapshot was taken
	snapOrigin pixel.Vec
	snapGen    uint64
	snapValid  bool

	progressOrigin pixel.Vec
	lastProgress   time.Time
	travelled      float64
	best           *NeuralDriver
	bestScore      float64
	mutations      int

	log *logrus.Entry
}

func NewPilot(a *agent.Agent, w *world.World, clock clockwork.Clock, step, turnDeg float64, manual Driver) *Pilot {
	now := clock.Now()
	p := &Pilot{
		agent:          a,
		world:          w,
		clock:          clock,
		step:           step,
		turnDeg:        turnDeg,
		turner:         motion.NewTurner(turnDuration, nil),
		manual:         manual,
		autopilot:      NewNeuralDriver(),
		last:           now,
		progressOrigin: a.Center(),
		lastProgress:   now,
		log:            logrus.WithField("component", "pilot"),
	}
	p.refreshWalls()
	return p
}

// SetAutopilot switches between the manual driver and the network.
func (p *Pilot) SetAutopilot(on bool) {
	if on == p.auto {
		return
	}
	p.auto = on
	p.progressOrigin = p.agent.Center()
	p.lastProgress = p.clock.Now()
	p.travelled = 0
	p.log.WithFields(logrus.Fields{
		"autopilot": on,
		"source":    p.autopilot.source,
	}).Info("Driver switched.")
}

func (p *Pilot) Autopilot() bool { return p.auto }

func (p *Pilot) driver() Driver {
	if p.auto {
		return p.autopilot
	}
	return p.manual
}

func (p *Pilot) processStep() {
	now := p.clock.Now()
	delta := now.Sub(p.last)
	p.last = now

	p.refreshWalls()

	keys := p.driver().Drive(getVision(p.agent))

	for _, m := range moves {
		if keys[m.cmd] {
			p.agent.Move(m.dir, p.step)
		}
	}
	if keys[cmdTurnLeft] {
		p.turner.Start(-p.turnDeg)
	}
	if keys[cmdTurnRight] {
		p.turner.Start(p.turnDeg)
	}
	if p.turner.Active() {
		p.agent.TurnDegrees(p.turner.Update(delta))
	}

	if p.auto {
		p.checkProgress(now)
	}
}

// refreshWalls retakes the agent's snapshot once the world has changed or the
// agent has wandered far enough that walls outside it could come into view.
func (p *Pilot) refreshWalls() {
	maxView := p.agent.MaxViewDistance()
	center := p.agent.Center()
	if p.snapValid && p.snapGen == p.world.Generation() && center.Sub(p.snapOrigin).Len() <= maxView {
		return
	}
	walls := p.world.LocalWalls(center, 2*maxView)
	p.agent.UpdateVisibleWalls(walls)
	p.snapOrigin = center
	p.snapGen = p.world.Generation()
	p.snapValid = true
	p.log.WithFields(logrus.Fields{
		"center": center,
		"walls":  len(walls),
	}).Debug("Wall snapshot refreshed.")
}

// checkProgress replaces an autopilot that stopped getting anywhere. The best
// network so far is kept and the next one is mutated from it, or bred from it
// and the one that just stalled.
func (p *Pilot) checkProgress(now time.Time) {
	if d := p.agent.Center().Sub(p.progressOrigin).Len(); d >= stallSteps*p.step {
		p.travelled += d
		p.progressOrigin = p.agent.Center()
		p.lastProgress = now
		return
	}
	if now.Sub(p.lastProgress) <= stallTimeout {
		return
	}

	score := p.travelled
	if p.best == nil || score > p.bestScore {
		best := p.autopilot
		p.best = &best
		p.bestScore = score
	}

	p.mutations++
	if p.mutations%2 == 0 {
		p.autopilot = BreedNeuralDrivers(*p.best, p.autopilot, p.bestScore, score)
	} else {
		p.autopilot = MutateNeuralDriver(*p.best)
	}
	p.log.WithFields(logrus.Fields{
		"score":     score,
		"best":      p.bestScore,
		"mutations": p.mutations,
		"source":    p.autopilot.source,
	}).Info("Autopilot stalled, replacing network.")

	p.travelled = 0
	p.progressOrigin = p.agent.Center()
	p.lastProgress = now
}
