package dto

type RecordInput struct {
	Feeling string
}

type ThemeOutput struct {
	Background string
	Accent     string
	Message    string
}

// FeelingOutput describes the stored check-in. Recorded is false when none exists.
type FeelingOutput struct {
	Feeling  string
	Recorded bool
	Emoji    string
	Color    string
	Theme    ThemeOutput
}

type OptionOutput struct {
	Feeling string
	Emoji   string
	Color   string
}
