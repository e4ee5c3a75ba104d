package dto

type SpeakInput struct {
	Text  string
	Rate  float64
	Pitch float64
}
