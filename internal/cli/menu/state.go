package menu

import "strings"

// State is a position in the menu loop.
type State int

const (
	StateMainMenu State = iota
	StateListing
	StateAdding
	StateRemoving
	StateUpdating
	StateCleaningExpired
	StateShowingStats
	StateExiting
)

var stateNames = map[State]string{
	StateMainMenu:        "main-menu",
	StateListing:         "listing",
	StateAdding:          "adding",
	StateRemoving:        "removing",
	StateUpdating:        "updating",
	StateCleaningExpired: "cleaning-expired",
	StateShowingStats:    "showing-stats",
	StateExiting:         "exiting",
}

// String returns the state name used in logs.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Mutates reports whether the table is saved after an action in this state.
func (s State) Mutates() bool {
	switch s {
	case StateAdding, StateRemoving, StateUpdating, StateCleaningExpired:
		return true
	default:
		return false
	}
}

// option is one line of the main menu.
type option struct {
	key   string
	label string
	state State
}

var mainOptions = []option{
	{"1", "List tokens", StateListing},
	{"2", "Add token", StateAdding},
	{"3", "Remove token", StateRemoving},
	{"4", "Update token", StateUpdating},
	{"5", "Clean expired tokens", StateCleaningExpired},
	{"6", "Statistics", StateShowingStats},
	{"7", "Exit", StateExiting},
}

// parseChoice maps a menu selection to its state. Unknown input yields
// StateMainMenu and false.
func parseChoice(choice string) (State, bool) {
	choice = strings.TrimSpace(choice)
	for _, opt := range mainOptions {
		if opt.key == choice {
			return opt.state, true
		}
	}
	return StateMainMenu, false
}

// confirmed reports whether answer is an affirmative reply.
func confirmed(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
