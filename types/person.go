package types

import "fmt"

// Person is a single traveller. WaitTime counts every round spent
// waiting on a floor or riding an elevator.
type Person struct {
	Start    int
	Target   int
	WaitTime int
}

func NewPerson(start, target int) *Person {
	return &Person{Start: start, Target: target}
}

// AngerLevel maps the wait time onto five steps, 0 through 4.
func (p *Person) AngerLevel() int {
	switch {
	case p.WaitTime <= 2:
		return 0
	case p.WaitTime <= 4:
		return 1
	case p.WaitTime <= 6:
		return 2
	case p.WaitTime <= 8:
		return 3
	default:
		return 4
	}
}

// Direction is the way this person wants to travel from their start floor.
func (p *Person) Direction() Direction {
	return DirectionBetween(p.Start, p.Target)
}

func (p Person) String() string {
	return fmt.Sprintf("Person(start=%d, target=%d, wait_time=%d)", p.Start, p.Target, p.WaitTime)
}
