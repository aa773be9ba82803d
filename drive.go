package main

import (
	"math/rand"

	"github.com/faiface/pixel/pixelgl"

	"github.com/NOX73/go-neural"
)

type command int

const (
	cmdForward command = iota
	cmdBackward
	cmdLeft
	cmdRight
	cmdTurnLeft
	cmdTurnRight
)

func (c command) String() string {
	switch c {
	case cmdForward:
		return "forward"
	case cmdBackward:
		return "backward"
	case cmdLeft:
		return "left"
	case cmdRight:
		return "right"
	case cmdTurnLeft:
		return "turn left"
	case cmdTurnRight:
		return "turn right"
	}
	return "none"
}

type inputs struct {
	// probe distances across the field of view, as fractions of the max view distance
	distances []float64
	// distance to the closest wall, same scale
	clearance float64
}

type outputs map[command]bool

type Driver interface {
	Drive(inputs) outputs
}

// keyboard is the part of a pixelgl.Window a ManualDriver reads.
type keyboard interface {
	JustPressed(pixelgl.Button) bool
	Repeated(pixelgl.Button) bool
}

var manualKeys = map[pixelgl.Button]command{
	pixelgl.KeyW:     cmdForward,
	pixelgl.KeyUp:    cmdForward,
	pixelgl.KeyS:     cmdBackward,
	pixelgl.KeyDown:  cmdBackward,
	pixelgl.KeyA:     cmdLeft,
	pixelgl.KeyD:     cmdRight,
	pixelgl.KeyQ:     cmdTurnLeft,
	pixelgl.KeyLeft:  cmdTurnLeft,
	pixelgl.KeyE:     cmdTurnRight,
	pixelgl.KeyRight: cmdTurnRight,
}

// ManualDriver steps once per key press and again on every key repeat.
type ManualDriver struct {
	win keyboard
}

func NewManualDriver(win keyboard) ManualDriver {
	return ManualDriver{win: win}
}

func (d ManualDriver) Drive(i inputs) outputs {
	ret := make(outputs)
	for key, cmd := range manualKeys {
		if d.win.JustPressed(key) || d.win.Repeated(key) {
			ret[cmd] = true
		}
	}
	return ret
}

// commands the network's outputs stand for, in order
var neuralCommands = []command{
	cmdForward,
	cmdBackward,
	cmdTurnLeft,
	cmdTurnRight,
}

type NeuralDriver struct {
	network *neural.Network
	source  string
}

func (d NeuralDriver) Drive(i inputs) outputs {
	in := append([]float64(nil), i.distances...)
	in = append(in, i.clearance)
	output := d.network.Calculate(in)

	presses := make(outputs)
	for i, val := range output {
		if val >= 0.5 {
			presses[neuralCommands[i]] = true
		}
	}
	return presses
}

func NewNeuralDriver() NeuralDriver {
	// Last layer is network output.
	n := neural.NewNetwork(visionPoints+1, []int{12, 12, len(neuralCommands)})
	n.RandomizeSynapses()

	return NeuralDriver{
		network: n,
		source:  "initial",
	}
}

// stdev is the spread of the noise added to every inherited weight.
const stdev = 0.5

// BreedNeuralDrivers crosses a and b. Each weight of the child leans toward
// the parent that travelled farther; with no distance to go by both count
// the same.
func BreedNeuralDrivers(a, b NeuralDriver, travelledA, travelledB float64) NeuralDriver {
	return offspring("bred from best", []NeuralDriver{a, b}, []float64{travelledA, travelledB}, stdev)
}

// MutateNeuralDriver copies a with noise on every weight.
func MutateNeuralDriver(a NeuralDriver) NeuralDriver {
	return offspring("mutated from best", []NeuralDriver{a}, nil, stdev)
}

// offspring builds a network whose weights are the share-weighted mean of
// the parents' plus normal noise of the given spread. Negative shares count
// as zero.
func offspring(source string, parents []NeuralDriver, shares []float64, noise float64) NeuralDriver {
	mix := make([]float64, len(parents))
	total := 0.0
	for i := range parents {
		if i < len(shares) && shares[i] > 0 {
			mix[i] = shares[i]
			total += shares[i]
		}
	}
	for i := range mix {
		if total > 0 {
			mix[i] /= total
		} else {
			mix[i] = 1 / float64(len(parents))
		}
	}

	child := NewNeuralDriver()
	child.source = source
	for i, l := range child.network.Layers {
		for j, n := range l.Neurons {
			for k, syn := range n.InSynapses {
				w := 0.0
				for p, parent := range parents {
					w += mix[p] * parent.network.Layers[i].Neurons[j].InSynapses[k].Weight
				}
				syn.Weight = w + rand.NormFloat64()*noise
			}
		}
	}
	return child
}
