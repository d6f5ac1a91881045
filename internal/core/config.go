package core

// RuntimeConfig contains host settings that come from the command line
// rather than the game config file.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// GameState is what the host shows next to the playfield.
type GameState struct {
	Score  int  // Current score
	Frame  int  // Ticks since the session started
	Paused bool // Whether the simulation is paused
}
