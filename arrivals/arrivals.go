package arrivals

import (
	"errors"
	"fmt"

	"elevatorsim/types"

	"github.com/golang/glog"
)

var (
	ErrInvalidFloor    = errors.New("invalid floor")
	ErrMalformedRecord = errors.New("malformed arrival record")
)

// Generator produces the people arriving at a given round, grouped by
// their start floor. Within a floor, earlier entries arrived first.
type Generator interface {
	Generate(round int) map[int][]*types.Person
}

// FixedCycle adds exactly one person at floor 1 every round. The target
// floor cycles through 2, 3, ..., maxFloor and starts over.
type FixedCycle struct {
	maxFloor  int
	lastRound int
}

func NewFixedCycle(maxFloor int) (*FixedCycle, error) {
	if maxFloor < 2 {
		return nil, fmt.Errorf("%w: max floor %d, need at least 2", ErrInvalidFloor, maxFloor)
	}
	return &FixedCycle{maxFloor: maxFloor, lastRound: -1}, nil
}

func (g *FixedCycle) Generate(round int) map[int][]*types.Person {
	g.lastRound = checkMonotonic("fixed cycle", g.lastRound, round)

	target := (round % (g.maxFloor - 1)) + 2
	return map[int][]*types.Person{
		1: {types.NewPerson(1, target)},
	}
}

// Scripted replays a schedule of (start, target) pairs keyed by round.
type Scripted struct {
	maxFloor  int
	schedule  Schedule
	lastRound int
}

// NewScripted validates every scheduled trip against maxFloor.
func NewScripted(maxFloor int, schedule Schedule) (*Scripted, error) {
	if maxFloor < 2 {
		return nil, fmt.Errorf("%w: max floor %d, need at least 2", ErrInvalidFloor, maxFloor)
	}
	for round, trips := range schedule {
		if round < 0 {
			return nil, fmt.Errorf("%w: negative round %d", ErrMalformedRecord, round)
		}
		for _, trip := range trips {
			if err := trip.validate(maxFloor); err != nil {
				return nil, fmt.Errorf("round %d: %w", round, err)
			}
		}
	}
	return &Scripted{maxFloor: maxFloor, schedule: schedule, lastRound: -1}, nil
}

// Generate creates fresh people for every trip scheduled at round.
// Rounds without an entry yield an empty map.
func (g *Scripted) Generate(round int) map[int][]*types.Person {
	g.lastRound = checkMonotonic("scripted", g.lastRound, round)

	arrivals := make(map[int][]*types.Person)
	for _, trip := range g.schedule[round] {
		arrivals[trip.Start] = append(arrivals[trip.Start], types.NewPerson(trip.Start, trip.Target))
	}
	return arrivals
}

func checkMonotonic(name string, lastRound, round int) int {
	if round < lastRound {
		glog.Warningf("%s arrivals: round %d requested after round %d", name, round, lastRound)
	}
	return round
}
