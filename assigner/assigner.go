package assigner

import (
	"fmt"
	"strings"

	"elevatorsim/types"
)

// MovingAlgorithm decides where every elevator heads next. It only sets
// TargetFloor; moving the cars and touching passengers or waiting lists
// is left to the simulation.
type MovingAlgorithm interface {
	UpdateTargetFloors(elevators []*types.Elevator, waiting map[int][]*types.Person, maxFloor int)
}

// ByName returns the moving algorithm registered under name.
func ByName(name string) (MovingAlgorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "shuttle", "shuttle_loop":
		return ShuttleLoop{}, nil
	case "farthest", "farthest_demand":
		return FarthestDemand{}, nil
	}
	return nil, fmt.Errorf("unknown moving algorithm %q", name)
}

// ShuttleLoop sends every elevator back and forth between the bottom and
// top floors. Passengers and waiting people are ignored.
type ShuttleLoop struct{}

func (ShuttleLoop) UpdateTargetFloors(elevators []*types.Elevator, waiting map[int][]*types.Person, maxFloor int) {
	for _, e := range elevators {
		if e.CurrentFloor == 1 {
			e.TargetFloor = maxFloor
		} else if e.CurrentFloor == maxFloor {
			e.TargetFloor = 1
		}
	}
}

// FarthestDemand heads for the farthest floor somebody cares about.
//
// An elevator with passengers targets the farthest passenger destination.
// An empty idle elevator targets the farthest floor with people waiting,
// or stays put if nobody is waiting. An empty elevator that is already
// travelling keeps its target. Ties go to the lowest floor.
type FarthestDemand struct{}

func (FarthestDemand) UpdateTargetFloors(elevators []*types.Elevator, waiting map[int][]*types.Person, maxFloor int) {
	for _, e := range elevators {
		if len(e.Passengers) > 0 {
			targets := make([]int, 0, len(e.Passengers))
			for _, p := range e.Passengers {
				targets = append(targets, p.Target)
			}
			e.TargetFloor = farthest(e.CurrentFloor, targets)
		} else if e.IsIdle() {
			e.TargetFloor = farthest(e.CurrentFloor, demandedFloors(waiting, maxFloor))
		}
	}
}

// demandedFloors lists, in ascending order, the floors with anyone waiting.
func demandedFloors(waiting map[int][]*types.Person, maxFloor int) []int {
	floors := make([]int, 0, maxFloor)
	for floor := 1; floor <= maxFloor; floor++ {
		if len(waiting[floor]) > 0 {
			floors = append(floors, floor)
		}
	}
	return floors
}

// farthest returns the candidate with the largest distance from floor,
// preferring the lowest floor on ties. With no candidates it returns floor.
func farthest(floor int, candidates []int) int {
	best := floor
	bestDist := -1
	for _, c := range candidates {
		dist := abs(c - floor)
		if dist > bestDist || (dist == bestDist && c < best) {
			best = c
			bestDist = dist
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
