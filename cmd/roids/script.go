package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-roids/internal/games/roids"
)

// inputScript is a fixed control pattern for headless runs.
type inputScript struct {
	FireEvery int  // Press fire on every Nth frame; 0 never fires
	Thrust    bool // Hold thrust the whole run
	Turn      int  // Held turn direction: -1, 0 or 1
}

// parseScript reads a comma separated script such as
// "fire-every=30,thrust,turn=-1". An empty string is an idle script.
func parseScript(s string) (inputScript, error) {
	var script inputScript
	if strings.TrimSpace(s) == "" {
		return script, nil
	}

	for _, part := range strings.Split(s, ",") {
		name, value, hasValue := strings.Cut(strings.TrimSpace(part), "=")
		switch name {
		case "fire-every":
			n, err := strconv.Atoi(value)
			if !hasValue || err != nil || n <= 0 {
				return inputScript{}, fmt.Errorf("script: fire-every needs a positive number, got %q", value)
			}
			script.FireEvery = n
		case "thrust":
			if hasValue {
				return inputScript{}, fmt.Errorf("script: thrust takes no value")
			}
			script.Thrust = true
		case "turn":
			n, err := strconv.Atoi(value)
			if !hasValue || err != nil || n < -1 || n > 1 {
				return inputScript{}, fmt.Errorf("script: turn must be -1, 0 or 1, got %q", value)
			}
			script.Turn = n
		default:
			return inputScript{}, fmt.Errorf("script: unknown directive %q", name)
		}
	}
	return script, nil
}

// scriptInput replays an inputScript against the game's frame counter.
type scriptInput struct {
	script inputScript
	frame  func() int
}

// Poll samples the script for the current frame. Fire is only down on the
// scheduled frames so each one is a fresh press.
func (s *scriptInput) Poll() roids.Input {
	in := roids.Input{Turn: s.script.Turn, Thrust: s.script.Thrust}
	if s.script.FireEvery > 0 && s.frame != nil {
		in.Fire = s.frame()%s.script.FireEvery == 0
	}
	return in
}
