// Package montyhall implements the three-door Monty Hall game and a
// simulation harness that compares the stay and switch strategies against
// the same random game states.
package montyhall

import "errors"

// DoorCount is the fixed number of doors in the game.
const DoorCount = 3

// Content is what hides behind a door.
type Content int

const (
	Goat Content = iota
	Car
)

func (c Content) String() string {
	switch c {
	case Goat:
		return "Goat"
	case Car:
		return "Car"
	default:
		return "Unknown"
	}
}

// Door identifies one of the three doors, numbered 1 through 3.
type Door int

// Valid reports whether the door number is within 1..3.
func (d Door) Valid() bool {
	return d >= 1 && d <= DoorCount
}

// Strategy is the contestant's decision after the host opens a door.
type Strategy int

const (
	Stay Strategy = iota
	Switch
)

func (s Strategy) String() string {
	switch s {
	case Stay:
		return "Stay"
	case Switch:
		return "Switch"
	default:
		return "Unknown"
	}
}

// Outcome is the result of a single strategy in a single trial.
type Outcome int

const (
	Lose Outcome = iota
	Win
)

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "Lose"
	case Win:
		return "Win"
	default:
		return "Unknown"
	}
}

// TrialResult pairs a strategy with its outcome for one trial.
type TrialResult struct {
	Strategy Strategy
	Outcome  Outcome
}

// ErrInvalidDoor indicates a door number outside the 1..3 range.
var ErrInvalidDoor = errors.New("door must be between 1 and 3")

// ErrSameDoor indicates the opened and picked doors coincide.
var ErrSameDoor = errors.New("opened door must differ from picked door")

// ErrInvalidTrials indicates a non-positive trial count.
var ErrInvalidTrials = errors.New("trials must be positive")
