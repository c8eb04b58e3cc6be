package statesync

import (
	"fmt"
	"sort"

	"elevatorsim/types"

	"github.com/tiendc/go-deepcopy"
)

// SnapshotElevators deep copies the elevators, passengers included.
func SnapshotElevators(elevators []*types.Elevator) []types.Elevator {
	snapshot := make([]types.Elevator, len(elevators))
	for i, e := range elevators {
		if err := deepcopy.Copy(&snapshot[i], e); err != nil {
			panic(fmt.Sprintf("snapshot of elevator %d failed: %v", i, err))
		}
	}
	return snapshot
}

// SnapshotPeople copies a list of people by value.
func SnapshotPeople(people []*types.Person) []types.Person {
	snapshot := make([]types.Person, len(people))
	for i, p := range people {
		snapshot[i] = *p
	}
	return snapshot
}

// SnapshotFloors copies a per-floor table of people.
func SnapshotFloors(floors map[int][]*types.Person) map[int][]types.Person {
	snapshot := make(map[int][]types.Person, len(floors))
	for floor, people := range floors {
		snapshot[floor] = SnapshotPeople(people)
	}
	return snapshot
}

// SortedFloors returns the keys of a per-floor table in ascending order.
func SortedFloors[T any](floors map[int]T) []int {
	keys := make([]int, 0, len(floors))
	for floor := range floors {
		keys = append(keys, floor)
	}
	sort.Ints(keys)
	return keys
}
