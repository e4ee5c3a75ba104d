package dto

type TaskOutput struct {
	Label string
	Done  bool
}

type SummaryOutput struct {
	Date      string
	Feeling   string
	Completed int
	Total     int
	State     string
	Message   string
	Tasks     []TaskOutput
}

type ReportOutput struct {
	Path    string
	Summary SummaryOutput
}
