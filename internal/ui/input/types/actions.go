package types

import "courtside/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type SwitchScreenAction struct {
	Screen Screen
	// Step moves relative to the current screen when non-zero
	Step int
}

func (a SwitchScreenAction) Type() string { return "switch_screen" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Loading actions
type LoadMoreAction struct{}

func (a LoadMoreAction) Type() string { return "load_more" }

type ReloadTeamsAction struct{}

func (a ReloadTeamsAction) Type() string { return "reload_teams" }

type ShowConferenceAction struct {
	Conference domain.Conference
}

func (a ShowConferenceAction) Type() string { return "show_conference" }

type ClearPredictionAction struct{}

func (a ClearPredictionAction) Type() string { return "clear_prediction" }

// Other actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
