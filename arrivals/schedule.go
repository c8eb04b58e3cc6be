package arrivals

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
)

// Trip is one scheduled arrival.
type Trip struct {
	Start  int
	Target int
}

func (t Trip) validate(maxFloor int) error {
	if t.Start < 1 || t.Start > maxFloor || t.Target < 1 || t.Target > maxFloor {
		return fmt.Errorf("%w: trip %d->%d outside floors 1..%d", ErrInvalidFloor, t.Start, t.Target, maxFloor)
	}
	if t.Start == t.Target {
		return fmt.Errorf("%w: trip %d->%d has the same start and target", ErrMalformedRecord, t.Start, t.Target)
	}
	return nil
}

// Schedule maps a round number to the trips starting in that round.
type Schedule map[int][]Trip

// LoadSchedule reads a schedule from a CSV file.
func LoadSchedule(path string) (Schedule, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	schedule, err := ReadSchedule(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	glog.V(1).Infof("Loaded %d scheduled rounds from `%s`", len(schedule), path)
	return schedule, nil
}

// ReadSchedule parses records of the form
//
//	round, start1, target1, start2, target2, ...
//
// A later record for the same round replaces the earlier one.
func ReadSchedule(r io.Reader) (Schedule, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	schedule := make(Schedule)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
		}
		if len(record) == 0 || (len(record) == 1 && strings.TrimSpace(record[0]) == "") {
			continue
		}

		line, _ := reader.FieldPos(0)
		round, trips, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if _, exists := schedule[round]; exists {
			glog.Warningf("Round %d scheduled twice, keeping line %d", round, line)
		}
		schedule[round] = trips
	}
	return schedule, nil
}

func parseRecord(record []string) (int, []Trip, error) {
	if len(record)%2 != 1 {
		return 0, nil, fmt.Errorf("%w: %d fields, expected a round followed by start/target pairs", ErrMalformedRecord, len(record))
	}

	fields := make([]int, len(record))
	for i, raw := range record {
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0, nil, fmt.Errorf("%w: field %d: %q is not an integer", ErrMalformedRecord, i+1, raw)
		}
		fields[i] = value
	}

	round := fields[0]
	if round < 0 {
		return 0, nil, fmt.Errorf("%w: negative round %d", ErrMalformedRecord, round)
	}

	trips := make([]Trip, 0, len(fields)/2)
	for i := 1; i < len(fields); i += 2 {
		trips = append(trips, Trip{Start: fields[i], Target: fields[i+1]})
	}
	return round, trips, nil
}
