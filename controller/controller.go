package controller

import (
	"fmt"

	"elevatorsim/statesync"
	"elevatorsim/types"

	"github.com/golang/glog"
)

// NewSimulation validates cfg and builds a simulation with every elevator
// parked empty at floor 1.
func NewSimulation(cfg Config) (*Simulation, error) {
	switch {
	case cfg.NumFloors < 2:
		return nil, fmt.Errorf("%w: %d floors, need at least 2", ErrInvalidConfig, cfg.NumFloors)
	case cfg.NumElevators < 1:
		return nil, fmt.Errorf("%w: %d elevators, need at least 1", ErrInvalidConfig, cfg.NumElevators)
	case cfg.ElevatorCapacity < 1:
		return nil, fmt.Errorf("%w: capacity %d, need at least 1", ErrInvalidConfig, cfg.ElevatorCapacity)
	case cfg.Arrivals == nil:
		return nil, fmt.Errorf("%w: no arrival generator", ErrInvalidConfig)
	case cfg.MovingAlgorithm == nil:
		return nil, fmt.Errorf("%w: no moving algorithm", ErrInvalidConfig)
	}

	elevators := make([]*types.Elevator, 0, cfg.NumElevators)
	for i := 0; i < cfg.NumElevators; i++ {
		elevators = append(elevators, types.NewElevator(cfg.ElevatorCapacity))
	}

	waiting := make(map[int][]*types.Person, cfg.NumFloors)
	for floor := 1; floor <= cfg.NumFloors; floor++ {
		waiting[floor] = []*types.Person{}
	}

	observer := cfg.Observer
	if cfg.Headless {
		observer = nil
	}

	glog.Infof("Simulation: %d floors, %d elevators of capacity %d, moving algorithm %T, arrivals %T",
		cfg.NumFloors, cfg.NumElevators, cfg.ElevatorCapacity, cfg.MovingAlgorithm, cfg.Arrivals)

	return &Simulation{
		state:     ST_Ready,
		numFloors: cfg.NumFloors,
		elevators: elevators,
		waiting:   waiting,
		arrivals:  cfg.Arrivals,
		moving:    cfg.MovingAlgorithm,
		observer:  observer,
	}, nil
}

// Run plays numRounds rounds and returns the statistics. A simulation can
// only be run once.
func (s *Simulation) Run(numRounds int) (Stats, error) {
	if s.state != ST_Ready {
		glog.Errorf("Run called on a simulation in state %d", s.state)
		return Stats{}, ErrAlreadyRun
	}
	if numRounds < 1 {
		return Stats{}, fmt.Errorf("%w: got %d", ErrInvalidRounds, numRounds)
	}

	s.state = ST_Running
	glog.Infof("Running simulation for %d rounds", numRounds)

	for round := 0; round < numRounds; round++ {
		s.runRound(round)
	}

	s.state = ST_Finished
	stats := s.calculateStats(numRounds)
	glog.Infof("Simulation finished: %+v", stats)
	if s.observer != nil {
		s.observer.Finished(stats.Map())
	}
	return stats, nil
}

// runRound executes the five stages in their fixed order.
func (s *Simulation) runRound(round int) {
	glog.V(1).Infof("Round %d", round)
	if s.observer != nil {
		s.observer.RoundStarted(round)
	}

	s.handleDisembarking()
	s.generateArrivals(round)
	s.handleBoarding()
	s.moveElevators()
	s.updateWaitTimes()
}

func (s *Simulation) handleDisembarking() {
	for i, e := range s.elevators {
		remaining := e.Passengers[:0]
		var leaving []*types.Person
		for _, p := range e.Passengers {
			if p.Target == e.CurrentFloor {
				leaving = append(leaving, p)
			} else {
				remaining = append(remaining, p)
			}
		}
		clear(e.Passengers[len(remaining):])
		e.Passengers = remaining

		for _, p := range leaving {
			s.completed = append(s.completed, p)
			glog.V(2).Infof("Elevator %d: %v disembarked at floor %d", i, p, e.CurrentFloor)
			if s.observer != nil {
				s.observer.Disembarked(*p, i)
			}
		}
	}
}

func (s *Simulation) generateArrivals(round int) {
	newArrivals := s.arrivals.Generate(round)

	for _, floor := range statesync.SortedFloors(newArrivals) {
		if _, ok := s.waiting[floor]; !ok {
			panic(fmt.Sprintf("arrivals at floor %d outside 1..%d", floor, s.numFloors))
		}
		for _, p := range newArrivals[floor] {
			s.checkArrival(floor, p)
		}
		s.waiting[floor] = append(s.waiting[floor], newArrivals[floor]...)
		s.totalPeople = append(s.totalPeople, newArrivals[floor]...)
		glog.V(2).Infof("Round %d: %d arrived at floor %d", round, len(newArrivals[floor]), floor)
	}

	if s.observer != nil {
		s.observer.Arrived(statesync.SnapshotFloors(newArrivals))
	}
}

func (s *Simulation) checkArrival(floor int, p *types.Person) {
	if p.Start != floor || p.Target < 1 || p.Target > s.numFloors || p.Start == p.Target {
		panic(fmt.Sprintf("invalid arrival %v at floor %d", p, floor))
	}
}

// handleBoarding lets waiting people onto elevators at their floor. Earlier
// elevators and earlier arrivals get first claim on spare capacity.
func (s *Simulation) handleBoarding() {
	for i, e := range s.elevators {
		floor := e.CurrentFloor
		remaining := make([]*types.Person, 0, len(s.waiting[floor]))

		for _, p := range s.waiting[floor] {
			if e.HasSpace() && canBoard(p, floor, e.TargetFloor) {
				e.Passengers = append(e.Passengers, p)
				glog.V(2).Infof("Elevator %d: %v boarded at floor %d", i, p, floor)
				if s.observer != nil {
					s.observer.Boarded(*p, i)
				}
			} else {
				remaining = append(remaining, p)
			}
		}
		s.waiting[floor] = remaining

		if len(e.Passengers) > e.Capacity {
			panic(fmt.Sprintf("elevator %d over capacity: %d > %d", i, len(e.Passengers), e.Capacity))
		}
	}
}

// canBoard reports whether a person at floor may ride an elevator heading
// to target: down-bound people need an elevator going down or staying, and
// up-bound people one going up or staying.
func canBoard(p *types.Person, floor, target int) bool {
	return (floor > p.Target && target <= floor) || (floor < p.Target && target >= floor)
}

func (s *Simulation) moveElevators() {
	s.moving.UpdateTargetFloors(s.elevators, s.waiting, s.numFloors)

	directions := make([]types.Direction, len(s.elevators))
	for i, e := range s.elevators {
		if e.TargetFloor < 1 || e.TargetFloor > s.numFloors {
			panic(fmt.Sprintf("moving algorithm set elevator %d target to floor %d outside 1..%d", i, e.TargetFloor, s.numFloors))
		}
		directions[i] = stepTowardTarget(e)
	}

	if s.observer != nil {
		s.observer.ElevatorsMoved(statesync.SnapshotElevators(s.elevators), directions)
	}
}

// stepTowardTarget moves the elevator at most one floor.
func stepTowardTarget(e *types.Elevator) types.Direction {
	direction := types.DirectionBetween(e.CurrentFloor, e.TargetFloor)
	e.CurrentFloor += int(direction)
	return direction
}

func (s *Simulation) updateWaitTimes() {
	for _, e := range s.elevators {
		for _, p := range e.Passengers {
			p.WaitTime++
		}
	}
	for floor := 1; floor <= s.numFloors; floor++ {
		for _, p := range s.waiting[floor] {
			p.WaitTime++
		}
	}
}

func (s *Simulation) calculateStats(numRounds int) Stats {
	stats := Stats{
		NumRounds:       numRounds,
		TotalPeople:     len(s.totalPeople),
		PeopleCompleted: len(s.completed),
		MaxTime:         -1,
		AvgTime:         -1,
	}
	if len(s.completed) == 0 {
		return stats
	}

	sum := 0
	for _, p := range s.completed {
		sum += p.WaitTime
		if p.WaitTime > stats.MaxTime {
			stats.MaxTime = p.WaitTime
		}
	}
	stats.AvgTime = sum / len(s.completed)
	return stats
}
