package game

// Config holds viewer options.
type Config struct {
	Floor  int
	Width  int
	Height int
	// Seed for the first floor. Nil draws a random seed. Moving to another
	// floor keeps the current seed so a seeded session stays reproducible.
	Seed *int64
}
