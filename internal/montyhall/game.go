package montyhall

import "math/rand"

// Game is the hidden arrangement behind the three doors. Exactly one door
// hides the car; the other two hide goats. A Game is immutable once built.
type Game struct {
	contents [DoorCount]Content
}

// NewGame places the car behind a uniformly random door.
func NewGame(rng *rand.Rand) Game {
	var game Game
	game.contents[rng.Intn(DoorCount)] = Car
	return game
}

// GameWithCarAt builds a game with the car behind a known door. It exists
// for replaying fixed scenarios; live play uses NewGame.
func GameWithCarAt(door Door) (Game, error) {
	if !door.Valid() {
		return Game{}, ErrInvalidDoor
	}
	var game Game
	game.contents[door-1] = Car
	return game, nil
}

// Behind returns the content hidden behind door.
func (g Game) Behind(door Door) (Content, error) {
	if !door.Valid() {
		return Goat, ErrInvalidDoor
	}
	return g.contents[door-1], nil
}

// CarDoor returns the door hiding the car.
func (g Game) CarDoor() Door {
	for i, content := range g.contents {
		if content == Car {
			return Door(i + 1)
		}
	}
	return 0
}

// PickDoor selects the contestant's initial door uniformly at random,
// independent of the game state.
func PickDoor(rng *rand.Rand) Door {
	return Door(rng.Intn(DoorCount) + 1)
}

// OpenGoatDoor selects the door the host opens. The host never opens the
// contestant's pick and never opens the car door. When the pick hides the
// car both remaining doors hide goats and the host chooses between them
// uniformly; otherwise exactly one door qualifies and the choice consumes
// no randomness.
func OpenGoatDoor(rng *rand.Rand, game Game, pick Door) (Door, error) {
	if !pick.Valid() {
		return 0, ErrInvalidDoor
	}

	carDoor := game.CarDoor()
	candidates := make([]Door, 0, DoorCount-1)
	for door := Door(1); door <= DoorCount; door++ {
		if door == pick || door == carDoor {
			continue
		}
		candidates = append(candidates, door)
	}

	if len(candidates) == 1 {
		return candidates[0], nil
	}
	return candidates[rng.Intn(len(candidates))], nil
}

// ChangeDoor resolves the contestant's final door for a strategy. Stay keeps
// the original pick; Switch takes the one door that is neither the pick nor
// the opened door.
func ChangeDoor(strategy Strategy, opened, pick Door) (Door, error) {
	if !opened.Valid() || !pick.Valid() {
		return 0, ErrInvalidDoor
	}
	if opened == pick {
		return 0, ErrSameDoor
	}
	if strategy == Stay {
		return pick, nil
	}
	// The three door numbers sum to 6, so the remaining door falls out.
	return Door(6) - opened - pick, nil
}

// DetermineWinner maps a final pick to an outcome: Win when the car is
// behind it, Lose otherwise.
func DetermineWinner(final Door, game Game) (Outcome, error) {
	content, err := game.Behind(final)
	if err != nil {
		return Lose, err
	}
	if content == Car {
		return Win, nil
	}
	return Lose, nil
}
