package statesync

import (
	"io"
	"sync"

	"elevatorsim/types"

	"github.com/rs/zerolog"
)

const timeFormat = "2006-01-02T15:04:05.000Z07:00"

var once sync.Once

func configureZerolog() {
	zerolog.TimeFieldFormat = timeFormat
}

// ConsoleRenderer writes one structured line per simulation event.
type ConsoleRenderer struct {
	log   zerolog.Logger
	round int
}

func NewConsoleRenderer(out io.Writer, noColor bool) *ConsoleRenderer {
	once.Do(configureZerolog)

	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: timeFormat,
		NoColor:    noColor,
	}
	return &ConsoleRenderer{
		log: zerolog.New(output).With().Timestamp().Logger(),
	}
}

func (c *ConsoleRenderer) RoundStarted(round int) {
	c.round = round
	c.log.Info().Int("round", round).Msg("round started")
}

func (c *ConsoleRenderer) Disembarked(person types.Person, elevatorIdx int) {
	c.log.Info().
		Int("round", c.round).
		Int("elevator", elevatorIdx).
		Int("floor", person.Target).
		Int("wait_time", person.WaitTime).
		Msg("disembarked")
}

func (c *ConsoleRenderer) Arrived(arrivals map[int][]types.Person) {
	for _, floor := range SortedFloors(arrivals) {
		for _, p := range arrivals[floor] {
			c.log.Info().
				Int("round", c.round).
				Int("floor", floor).
				Int("target", p.Target).
				Msg("arrived")
		}
	}
}

func (c *ConsoleRenderer) Boarded(person types.Person, elevatorIdx int) {
	c.log.Info().
		Int("round", c.round).
		Int("elevator", elevatorIdx).
		Int("floor", person.Start).
		Int("target", person.Target).
		Int("anger", person.AngerLevel()).
		Msg("boarded")
}

func (c *ConsoleRenderer) ElevatorsMoved(elevators []types.Elevator, directions []types.Direction) {
	for i := range elevators {
		logElevator(c.log.Debug().Int("round", c.round).Int("elevator", i), &elevators[i]).
			Stringer("direction", directions[i]).
			Msg("moved")
	}
}

func (c *ConsoleRenderer) Finished(stats map[string]int) {
	ev := c.log.Info()
	for _, key := range []string{"num_rounds", "total_people", "people_completed", "max_time", "avg_time"} {
		ev = ev.Int(key, stats[key])
	}
	ev.Msg("simulation finished")
}

func logElevator(ev *zerolog.Event, e types.ElevatorState) *zerolog.Event {
	return ev.
		Int("floor", e.GetFloor()).
		Int("target", e.GetTargetFloor()).
		Int("passengers", len(e.GetPassengers())).
		Int("capacity", e.GetCapacity())
}
