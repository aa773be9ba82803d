package main

import (
	"math"

	"psykar.com/wallrunner/internal/agent"
)

const visionPoints = 7

// getVision turns the agent's probe fan and its clearance into driver inputs,
// each scaled to [0, 1] by the max view distance.
func getVision(a *agent.Agent) inputs {
	maxView := a.MaxViewDistance()
	distances := a.Probe(visionPoints)
	for i, d := range distances {
		distances[i] = d / maxView
	}

	clearance := 1.0
	if _, d, ok := getClosestWall(a.Center(), a.VisibleWalls()); ok {
		clearance = math.Min(d/maxView, 1)
	}
	return inputs{distances: distances, clearance: clearance}
}
