package dto

type SetupPINInput struct {
	PIN     string
	Confirm string
}

// ProfileInput carries the birthday as YYYY-MM-DD; empty clears it.
type ProfileInput struct {
	Name       string
	Age        string
	Sex        string
	ThemeColor string
	Birthday   string
}

type ThemeOutput struct {
	Background     string
	Title          string
	TileBackground string
	Label          string
	Button         string
}

type ProfileOutput struct {
	Name       string
	Age        string
	Sex        string
	ThemeColor string
	Birthday   string
	Theme      ThemeOutput
}
