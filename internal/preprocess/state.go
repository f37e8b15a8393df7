package preprocess

import (
	"strings"

	"github.com/gubarz/mdpp/internal/interpreter"
)

// State is the mutable state of one run. It is owned by the driver and
// passed to every handler.
type State struct {
	InCodeBlock bool
	HeaderOpen  bool
	Interp      interpreter.Interpreter
}

// NewState creates the state for a run against interp
func NewState(interp interpreter.Interpreter) *State {
	return &State{Interp: interp}
}

// IsCodeLine reports whether line is indented as a code block: four
// leading spaces or one leading tab.
func IsCodeLine(line string) bool {
	return strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")
}

// TrackCodeBlock updates the code block flag for the line about to be
// processed. A code line enters the block from that line on; the first
// non-code line leaves it and is processed as ordinary text.
func (s *State) TrackCodeBlock(line string) {
	if IsCodeLine(line) {
		s.InCodeBlock = true
	} else if s.InCodeBlock {
		s.InCodeBlock = false
	}
}
