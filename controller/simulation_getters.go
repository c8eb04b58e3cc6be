package controller

import (
	"elevatorsim/statesync"
	"elevatorsim/types"
)

func (s *Simulation) NumFloors() int {
	return s.numFloors
}

// Elevators returns a deep copy of the elevators in their fixed order.
func (s *Simulation) Elevators() []types.Elevator {
	return statesync.SnapshotElevators(s.elevators)
}

// Waiting returns a copy of the queue at floor, earliest arrival first.
func (s *Simulation) Waiting(floor int) []types.Person {
	return statesync.SnapshotPeople(s.waiting[floor])
}

func (s *Simulation) Completed() []types.Person {
	return statesync.SnapshotPeople(s.completed)
}

func (s *Simulation) TotalPeople() []types.Person {
	return statesync.SnapshotPeople(s.totalPeople)
}
