package dto

type OpenInput struct {
	// Mode overrides the mode derived from the last recorded feeling when set.
	Mode string
}

type StateOutput struct {
	Mode      string
	Phase     string
	Countdown int
	Cue       string
}

type SessionInfo struct {
	SessionID string
	Feeling   string
	Mode      string
}
