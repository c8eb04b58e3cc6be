package types

// Elevator is one car. Floors are 1-based.
type Elevator struct {
	Capacity     int
	CurrentFloor int
	TargetFloor  int
	Passengers   []*Person
}

// NewElevator returns an empty elevator parked at floor 1.
func NewElevator(capacity int) *Elevator {
	return &Elevator{
		Capacity:     capacity,
		CurrentFloor: 1,
		TargetFloor:  1,
		Passengers:   make([]*Person, 0, capacity),
	}
}

// Fullness is the fraction of capacity in use.
func (e *Elevator) Fullness() float64 {
	return float64(len(e.Passengers)) / float64(e.Capacity)
}

func (e *Elevator) HasSpace() bool {
	return len(e.Passengers) < e.Capacity
}

func (e *Elevator) IsIdle() bool {
	return e.TargetFloor == e.CurrentFloor
}

func (e *Elevator) GetFloor() int {
	return e.CurrentFloor
}

func (e *Elevator) GetTargetFloor() int {
	return e.TargetFloor
}

func (e *Elevator) GetCapacity() int {
	return e.Capacity
}

func (e *Elevator) GetPassengers() []Person {
	passengersCopy := make([]Person, len(e.Passengers))
	for i, p := range e.Passengers {
		passengersCopy[i] = *p
	}
	return passengersCopy
}
