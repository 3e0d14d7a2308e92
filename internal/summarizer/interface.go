package summarizer

import "context"

// Summary is the structured result parsed from the model's JSON output.
type Summary struct {
	KeyPoints   []string     `json:"key_points"`
	ActionItems []ActionItem `json:"action_items"`
}

type ActionItem struct {
	Title       string `json:"title"`
	Task        string `json:"task"`
	Description string `json:"description"`
	Deadline    string `json:"deadline"`
}

// Summarizer condenses an assembled transcript into a Summary via the
// chat completion endpoint.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (*Summary, error)
}
