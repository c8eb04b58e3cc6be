package types

import (
	"reflect"
	"testing"
)

func TestNewPerson(t *testing.T) {
	p := NewPerson(1, 5)
	expected := Person{Start: 1, Target: 5, WaitTime: 0}
	if !reflect.DeepEqual(*p, expected) {
		t.Errorf("New person not as expected.\nExpected: %+v\nWas: %+v", expected, *p)
	}
	if p.String() != "Person(start=1, target=5, wait_time=0)" {
		t.Errorf("Unexpected string representation %q", p.String())
	}
}

func TestAngerLevel(t *testing.T) {
	expected := []int{0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 4}
	p := NewPerson(1, 5)
	for waitTime, level := range expected {
		p.WaitTime = waitTime
		if p.AngerLevel() != level {
			t.Errorf("Anger level for wait time %d was %d, expected %d", waitTime, p.AngerLevel(), level)
		}
	}
	p.WaitTime = 100
	if p.AngerLevel() != 4 {
		t.Errorf("Anger level must saturate at 4, was %d", p.AngerLevel())
	}
}

func TestPersonDirection(t *testing.T) {
	if NewPerson(1, 5).Direction() != D_Up {
		t.Errorf("Person going 1->5 should want up")
	}
	if NewPerson(5, 2).Direction() != D_Down {
		t.Errorf("Person going 5->2 should want down")
	}
}

func TestNewElevator(t *testing.T) {
	e := NewElevator(10)
	if e.CurrentFloor != 1 || e.TargetFloor != 1 || len(e.Passengers) != 0 {
		t.Errorf("Elevator should start empty at floor 1, was %+v", *e)
	}
	if e.Fullness() != 0.0 {
		t.Errorf("Empty elevator fullness was %v", e.Fullness())
	}
	if !e.IsIdle() {
		t.Errorf("New elevator should be idle")
	}
}

func TestElevatorFullness(t *testing.T) {
	e := NewElevator(4)
	e.Passengers = append(e.Passengers, NewPerson(1, 2))
	if e.Fullness() != 0.25 {
		t.Errorf("Fullness was %v, expected 0.25", e.Fullness())
	}
	e.Passengers = append(e.Passengers, NewPerson(1, 3), NewPerson(1, 4), NewPerson(1, 5))
	if e.HasSpace() {
		t.Errorf("Full elevator reports spare capacity")
	}
}

func TestGetPassengersIsCopy(t *testing.T) {
	e := NewElevator(2)
	e.Passengers = append(e.Passengers, NewPerson(1, 3))

	passengers := e.GetPassengers()
	passengers[0].WaitTime = 42

	if e.Passengers[0].WaitTime != 0 {
		t.Errorf("Modifying returned passengers changed elevator state")
	}
}

func TestDirectionString(t *testing.T) {
	expects := map[Direction]string{D_Up: "up", D_Down: "down", D_Stay: "stay"}
	for d, s := range expects {
		if d.String() != s {
			t.Errorf("Direction %d printed as %q, expected %q", int(d), d.String(), s)
		}
	}
}
