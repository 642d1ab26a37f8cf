package models

import "time"

// APIError is the JSON error body returned by every endpoint.
type APIError struct {
	Type    string `json:"type"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// HumanizeResponse is the body returned by POST /api/v1/humanize.
type HumanizeResponse struct {
	ID                 string    `json:"id"`
	Text               string    `json:"text"`
	CitationsProtected int       `json:"citations_protected"`
	Original           TextStats `json:"original"`
	Result             TextStats `json:"result"`
}

// RewriteResponse is the body returned by POST /api/v1/rewrite.
type RewriteResponse struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Original TextStats `json:"original"`
	Result   TextStats `json:"result"`
}

// DetectionResponse is the body returned by POST /api/v1/detect.
type DetectionResponse struct {
	ID          string                   `json:"id"`
	Sentences   []SentenceClassification `json:"sentences"`
	Percentages map[Label]float64        `json:"percentages"`
	WordCount   int                      `json:"word_count"`
	Cached      bool                     `json:"cached"`
}

// HistoryResponse is the body returned by GET /api/v1/history.
type HistoryResponse struct {
	Items    []AnalysisRecord `json:"items"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// HealthResponse is the body returned by GET /api/v1/health.
type HealthResponse struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
	Uptime     string                     `json:"uptime"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
}

// ComponentStatus reports the health of a single collaborator.
type ComponentStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
