package statesync

import "elevatorsim/types"

// Observer receives read-only views of a running simulation. Everything
// handed to an Observer is a copy; changing it has no effect on the run.
type Observer interface {
	RoundStarted(round int)
	Disembarked(person types.Person, elevatorIdx int)
	Arrived(arrivals map[int][]types.Person)
	Boarded(person types.Person, elevatorIdx int)
	ElevatorsMoved(elevators []types.Elevator, directions []types.Direction)
	Finished(stats map[string]int)
}

// Multi fans every event out to several observers in order.
type Multi []Observer

func (m Multi) RoundStarted(round int) {
	for _, o := range m {
		o.RoundStarted(round)
	}
}

func (m Multi) Disembarked(person types.Person, elevatorIdx int) {
	for _, o := range m {
		o.Disembarked(person, elevatorIdx)
	}
}

func (m Multi) Arrived(arrivals map[int][]types.Person) {
	for _, o := range m {
		o.Arrived(arrivals)
	}
}

func (m Multi) Boarded(person types.Person, elevatorIdx int) {
	for _, o := range m {
		o.Boarded(person, elevatorIdx)
	}
}

func (m Multi) ElevatorsMoved(elevators []types.Elevator, directions []types.Direction) {
	for _, o := range m {
		o.ElevatorsMoved(elevators, directions)
	}
}

func (m Multi) Finished(stats map[string]int) {
	for _, o := range m {
		o.Finished(stats)
	}
}
