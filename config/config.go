package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"elevatorsim/arrivals"
	"elevatorsim/assigner"
	"elevatorsim/controller"
	"elevatorsim/statesync"

	"github.com/golang/glog"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

const (
	ArrivalsFixed    = "fixed"
	ArrivalsScripted = "scripted"
)

type ArrivalsConfig struct {
	Kind     string `yaml:"kind"`
	Schedule string `yaml:"schedule"`
}

type Config struct {
	NumFloors        int            `yaml:"num_floors"`
	NumElevators     int            `yaml:"num_elevators"`
	ElevatorCapacity int            `yaml:"elevator_capacity"`
	Rounds           int            `yaml:"rounds"`
	Headless         bool           `yaml:"headless"`
	MovingAlgorithm  string         `yaml:"moving_algorithm"`
	Arrivals         ArrivalsConfig `yaml:"arrivals"`
}

func Default() Config {
	return Config{
		NumFloors:        6,
		NumElevators:     2,
		ElevatorCapacity: 2,
		Rounds:           15,
		Headless:         false,
		MovingAlgorithm:  "farthest",
		Arrivals:         ArrivalsConfig{Kind: ArrivalsFixed},
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	c, err := Decode(file)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	glog.V(1).Infof("Loaded config from `%s`: %+v", path, c)
	return c, nil
}

func Decode(r io.Reader) (Config, error) {
	c := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	err := decoder.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return c, nil
}

// ApplyEnv overlays ELEVSIM_* settings from envPath and then from the
// process environment, which wins. A missing envPath is not an error.
func (c *Config) ApplyEnv(envPath string) error {
	values := map[string]string{}
	if envPath != "" {
		fileValues, err := godotenv.Read(envPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", envPath, err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	for _, key := range envKeys {
		if v, ok := os.LookupEnv(key); ok {
			values[key] = v
		}
	}

	ints := map[string]*int{
		"ELEVSIM_NUM_FLOORS":        &c.NumFloors,
		"ELEVSIM_NUM_ELEVATORS":     &c.NumElevators,
		"ELEVSIM_ELEVATOR_CAPACITY": &c.ElevatorCapacity,
		"ELEVSIM_ROUNDS":            &c.Rounds,
	}
	for key, field := range ints {
		v, ok := values[key]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, v)
		}
		*field = n
	}

	if v, ok := values["ELEVSIM_HEADLESS"]; ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: ELEVSIM_HEADLESS=%q is not a boolean", ErrInvalidConfig, v)
		}
		c.Headless = b
	}
	if v, ok := values["ELEVSIM_MOVING_ALGORITHM"]; ok {
		c.MovingAlgorithm = v
	}
	if v, ok := values["ELEVSIM_ARRIVALS"]; ok {
		c.Arrivals.Kind = v
	}
	if v, ok := values["ELEVSIM_SCHEDULE"]; ok {
		c.Arrivals.Schedule = v
	}
	return nil
}

var envKeys = []string{
	"ELEVSIM_NUM_FLOORS",
	"ELEVSIM_NUM_ELEVATORS",
	"ELEVSIM_ELEVATOR_CAPACITY",
	"ELEVSIM_ROUNDS",
	"ELEVSIM_HEADLESS",
	"ELEVSIM_MOVING_ALGORITHM",
	"ELEVSIM_ARRIVALS",
	"ELEVSIM_SCHEDULE",
}

func (c Config) Validate() error {
	switch {
	case c.NumFloors < 2:
		return fmt.Errorf("%w: num_floors %d, need at least 2", ErrInvalidConfig, c.NumFloors)
	case c.NumElevators < 1:
		return fmt.Errorf("%w: num_elevators %d, need at least 1", ErrInvalidConfig, c.NumElevators)
	case c.ElevatorCapacity < 1:
		return fmt.Errorf("%w: elevator_capacity %d, need at least 1", ErrInvalidConfig, c.ElevatorCapacity)
	case c.Rounds < 1:
		return fmt.Errorf("%w: rounds %d, need at least 1", ErrInvalidConfig, c.Rounds)
	}
	if _, err := assigner.ByName(c.MovingAlgorithm); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Arrivals.Kind {
	case ArrivalsFixed:
	case ArrivalsScripted:
		if c.Arrivals.Schedule == "" {
			return fmt.Errorf("%w: scripted arrivals need a schedule file", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown arrivals kind %q", ErrInvalidConfig, c.Arrivals.Kind)
	}
	return nil
}

func (c Config) NewGenerator() (arrivals.Generator, error) {
	if c.Arrivals.Kind == ArrivalsScripted {
		schedule, err := arrivals.LoadSchedule(c.Arrivals.Schedule)
		if err != nil {
			return nil, err
		}
		return arrivals.NewScripted(c.NumFloors, schedule)
	}
	return arrivals.NewFixedCycle(c.NumFloors)
}

// NewSimulation validates the config and wires up a simulation. Unless
// headless, events are rendered to out.
func (c Config) NewSimulation(out io.Writer) (*controller.Simulation, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	generator, err := c.NewGenerator()
	if err != nil {
		return nil, err
	}
	moving, err := assigner.ByName(c.MovingAlgorithm)
	if err != nil {
		return nil, err
	}

	var observer statesync.Observer
	if !c.Headless && out != nil {
		observer = statesync.NewConsoleRenderer(out, out != os.Stdout)
	}

	return controller.NewSimulation(controller.Config{
		NumFloors:        c.NumFloors,
		NumElevators:     c.NumElevators,
		ElevatorCapacity: c.ElevatorCapacity,
		Arrivals:         generator,
		MovingAlgorithm:  moving,
		Observer:         observer,
		Headless:         c.Headless,
	})
}
