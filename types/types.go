package types

// ElevatorState is the read-only view of an elevator used by observers.
type ElevatorState interface {
	GetFloor() int
	GetTargetFloor() int
	GetCapacity() int
	GetPassengers() []Person
}

type Direction int

const (
	D_Down Direction = -1
	D_Stay Direction = 0
	D_Up   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case D_Up:
		return "up"
	case D_Down:
		return "down"
	default:
		return "stay"
	}
}

// DirectionBetween returns the direction of travel from one floor to another.
func DirectionBetween(from, to int) Direction {
	if to > from {
		return D_Up
	} else if to < from {
		return D_Down
	}
	return D_Stay
}
