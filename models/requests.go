package models

// HumanizeRequest is the body of POST /api/v1/humanize. The rates are
// optional; when omitted the configured defaults apply.
type HumanizeRequest struct {
	Text           string   `json:"text"`
	SynonymRate    *float64 `json:"synonym_rate,omitempty"`
	TransitionRate *float64 `json:"transition_rate,omitempty"`
}

// RewriteRequest is the body of POST /api/v1/rewrite.
type RewriteRequest struct {
	Text string `json:"text"`
}
