package statesync

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"elevatorsim/types"
)

func TestSnapshotElevatorsIsDeep(t *testing.T) {
	e := types.NewElevator(3)
	e.CurrentFloor = 2
	e.TargetFloor = 4
	e.Passengers = append(e.Passengers, types.NewPerson(2, 4))

	snapshot := SnapshotElevators([]*types.Elevator{e})
	if snapshot[0].CurrentFloor != 2 || snapshot[0].TargetFloor != 4 || len(snapshot[0].Passengers) != 1 {
		t.Fatalf("Snapshot does not match original: %+v", snapshot[0])
	}

	snapshot[0].Passengers[0].WaitTime = 99
	snapshot[0].TargetFloor = 1
	if e.Passengers[0].WaitTime != 0 || e.TargetFloor != 4 {
		t.Errorf("Modifying snapshot changed the original elevator")
	}
	if snapshot[0].Passengers[0] == e.Passengers[0] {
		t.Errorf("Snapshot shares passenger pointers with the original")
	}
}

func TestSnapshotFloors(t *testing.T) {
	p := types.NewPerson(3, 1)
	floors := map[int][]*types.Person{1: {}, 3: {p}}

	snapshot := SnapshotFloors(floors)
	expected := map[int][]types.Person{1: {}, 3: {{Start: 3, Target: 1}}}
	if !reflect.DeepEqual(snapshot, expected) {
		t.Errorf("Snapshot not as expected.\nExpected: %+v\nWas: %+v", expected, snapshot)
	}
}

func TestSortedFloors(t *testing.T) {
	floors := map[int][]types.Person{5: nil, 1: nil, 3: nil}
	if keys := SortedFloors(floors); !reflect.DeepEqual(keys, []int{1, 3, 5}) {
		t.Errorf("Expected [1 3 5], was %v", keys)
	}
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()
	r.RoundStarted(0)
	r.Arrived(map[int][]types.Person{1: {{Start: 1, Target: 2}}})
	r.Boarded(types.Person{Start: 1, Target: 2}, 0)
	r.RoundStarted(1)
	r.Disembarked(types.Person{Start: 1, Target: 2, WaitTime: 1}, 0)
	r.Finished(map[string]int{"num_rounds": 2})

	kinds := make([]EventKind, 0, len(r.Events))
	for i, ev := range r.Events {
		if ev.Seq != i {
			t.Errorf("Event %d has sequence number %d", i, ev.Seq)
		}
		kinds = append(kinds, ev.Kind)
	}
	expected := []EventKind{EV_RoundStarted, EV_Arrived, EV_Boarded, EV_RoundStarted, EV_Disembarked, EV_Finished}
	if !reflect.DeepEqual(kinds, expected) {
		t.Errorf("Event kinds not as expected.\nExpected: %v\nWas: %v", expected, kinds)
	}

	disembarked := r.Filter(EV_Disembarked)
	if len(disembarked) != 1 || disembarked[0].Round != 1 {
		t.Errorf("Expected one disembark event in round 1, was %+v", disembarked)
	}
}

func TestMultiFansOut(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	m := Multi{a, b}
	m.RoundStarted(3)
	m.ElevatorsMoved([]types.Elevator{*types.NewElevator(1)}, []types.Direction{types.D_Stay})

	if len(a.Events) != 2 || len(b.Events) != 2 {
		t.Errorf("Every observer should see both events, saw %d and %d", len(a.Events), len(b.Events))
	}
}

func TestConsoleRenderer(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsoleRenderer(&buf, true)

	c.RoundStarted(7)
	c.Arrived(map[int][]types.Person{2: {{Start: 2, Target: 5}}})
	c.Boarded(types.Person{Start: 2, Target: 5}, 1)
	c.ElevatorsMoved([]types.Elevator{*types.NewElevator(2)}, []types.Direction{types.D_Up})
	c.Finished(map[string]int{"num_rounds": 8, "max_time": -1})

	out := buf.String()
	for _, want := range []string{"round started", "arrived", "boarded", "moved", "direction=up", "simulation finished", "max_time=-1"} {
		if !strings.Contains(out, want) {
			t.Errorf("Output missing %q:\n%s", want, out)
		}
	}
}
