package statesync

import "elevatorsim/types"

type EventKind int

const (
	EV_RoundStarted EventKind = iota
	EV_Disembarked
	EV_Arrived
	EV_Boarded
	EV_Moved
	EV_Finished
)

func (k EventKind) String() string {
	switch k {
	case EV_RoundStarted:
		return "round"
	case EV_Disembarked:
		return "disembarked"
	case EV_Arrived:
		return "arrived"
	case EV_Boarded:
		return "boarded"
	case EV_Moved:
		return "moved"
	case EV_Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Event is one recorded observation. Only the fields relevant to Kind are set.
type Event struct {
	Seq         int
	Kind        EventKind
	Round       int
	ElevatorIdx int
	Person      types.Person
	Arrivals    map[int][]types.Person
	Elevators   []types.Elevator
	Directions  []types.Direction
	Stats       map[string]int
}

// Recorder keeps every event it observes, in order.
type Recorder struct {
	Events []Event
	round  int
}

func NewRecorder() *Recorder {
	return &Recorder{round: -1}
}

func (r *Recorder) record(ev Event) {
	ev.Seq = len(r.Events)
	ev.Round = r.round
	r.Events = append(r.Events, ev)
}

func (r *Recorder) RoundStarted(round int) {
	r.round = round
	r.record(Event{Kind: EV_RoundStarted})
}

func (r *Recorder) Disembarked(person types.Person, elevatorIdx int) {
	r.record(Event{Kind: EV_Disembarked, Person: person, ElevatorIdx: elevatorIdx})
}

func (r *Recorder) Arrived(arrivals map[int][]types.Person) {
	r.record(Event{Kind: EV_Arrived, Arrivals: arrivals})
}

func (r *Recorder) Boarded(person types.Person, elevatorIdx int) {
	r.record(Event{Kind: EV_Boarded, Person: person, ElevatorIdx: elevatorIdx})
}

func (r *Recorder) ElevatorsMoved(elevators []types.Elevator, directions []types.Direction) {
	r.record(Event{Kind: EV_Moved, Elevators: elevators, Directions: directions})
}

func (r *Recorder) Finished(stats map[string]int) {
	r.record(Event{Kind: EV_Finished, Stats: stats})
}

// Filter returns the recorded events of the given kind.
func (r *Recorder) Filter(kind EventKind) []Event {
	var out []Event
	for _, ev := range r.Events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}
