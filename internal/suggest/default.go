package suggest

// Built-in messages.
const (
	DefaultSuggestion  = "Focus on consistent problem-solving each day."
	FallbackSuggestion = "Keep going! Mention the topics you practiced in your log to get a tailored suggestion."
)

// DefaultTable returns the built-in rule table. Order matters: "array" is
// checked before "graph", so a journal mentioning both gets the array
// suggestion.
func DefaultTable() Table {
	return Table{
		Rules: []Rule{
			{Keyword: "array", Suggestion: "Try exploring String or Sliding Window problems next."},
			{Keyword: "linked list", Suggestion: "How about tackling Stack and Queue based problems now?"},
			{Keyword: "graph", Suggestion: "You might want to learn Dynamic Programming or Trees next."},
			{Keyword: "dp", Suggestion: "Great! Maybe now challenge yourself with advanced Graph problems."},
		},
		Default:  DefaultSuggestion,
		Fallback: FallbackSuggestion,
	}
}
