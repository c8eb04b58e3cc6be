package controller

import (
	"errors"

	"elevatorsim/arrivals"
	"elevatorsim/assigner"
	"elevatorsim/statesync"
	"elevatorsim/types"
)

var (
	ErrInvalidConfig = errors.New("invalid simulation config")
	ErrInvalidRounds = errors.New("number of rounds must be at least 1")
	ErrAlreadyRun    = errors.New("simulation has already been run")
)

type stateSim int

const (
	ST_Ready    stateSim = 0
	ST_Running  stateSim = 1
	ST_Finished stateSim = 2
)

// Config holds everything a Simulation needs. With Headless set, or a nil
// Observer, nothing is reported while the simulation runs.
type Config struct {
	NumFloors        int
	NumElevators     int
	ElevatorCapacity int
	Arrivals         arrivals.Generator
	MovingAlgorithm  assigner.MovingAlgorithm
	Observer         statesync.Observer
	Headless         bool
}

type Simulation struct {
	state       stateSim
	numFloors   int
	elevators   []*types.Elevator
	waiting     map[int][]*types.Person
	totalPeople []*types.Person
	completed   []*types.Person
	arrivals    arrivals.Generator
	moving      assigner.MovingAlgorithm
	observer    statesync.Observer
}

// Stats summarises a finished run. MaxTime and AvgTime are -1 when
// nobody reached their target floor.
type Stats struct {
	NumRounds       int `yaml:"num_rounds"`
	TotalPeople     int `yaml:"total_people"`
	PeopleCompleted int `yaml:"people_completed"`
	MaxTime         int `yaml:"max_time"`
	AvgTime         int `yaml:"avg_time"`
}

func (s Stats) Map() map[string]int {
	return map[string]int{
		"num_rounds":       s.NumRounds,
		"total_people":     s.TotalPeople,
		"people_completed": s.PeopleCompleted,
		"max_time":         s.MaxTime,
		"avg_time":         s.AvgTime,
	}
}
