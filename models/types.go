package models

import "time"

// Label is one of the four origin categories assigned to a sentence by
// the detection model.
type Label string

const (
	LabelHuman          Label = "Human-written"
	LabelHumanAIRefined Label = "Human-written & AI-refined"
	LabelAIHumanRefined Label = "AI-generated & AI-refined"
	LabelAI             Label = "AI-generated"
)

// KnownLabels lists every label the classifier may return, in display order.
var KnownLabels = []Label{
	LabelHuman,
	LabelHumanAIRefined,
	LabelAIHumanRefined,
	LabelAI,
}

// SentenceClassification pairs a sentence with its assigned label.
type SentenceClassification struct {
	Text  string `json:"text"`
	Label Label  `json:"label"`
}

// DetectionAnalysis is the classifier output for one document: the
// per-sentence labels and the aggregate share of each label in percent.
type DetectionAnalysis struct {
	Sentences   []SentenceClassification `json:"sentences"`
	Percentages map[Label]float64        `json:"percentages"`
}

// TextStats carries word and sentence counts for display.
type TextStats struct {
	Words     int `json:"words"`
	Sentences int `json:"sentences"`
}

// HumanizeOptions are the two independent pipeline probabilities, both in
// the closed range [0, 1].
type HumanizeOptions struct {
	SynonymRate    float64
	TransitionRate float64
}

// HumanizeResult is the outcome of one humanization run.
type HumanizeResult struct {
	ID                 string
	Text               string
	CitationsProtected int
	Original           TextStats
	Result             TextStats
}

// RewriteResult is the outcome of one model-based rewrite run.
type RewriteResult struct {
	ID       string
	Text     string
	Original TextStats
	Result   TextStats
}

// DetectionResult is the outcome of one PDF detection run.
type DetectionResult struct {
	ID          string                   `json:"id"`
	Sentences   []SentenceClassification `json:"sentences"`
	Percentages map[Label]float64        `json:"percentages"`
	WordCount   int                      `json:"word_count"`
	Cached      bool                     `json:"cached"`
}

// AnalysisRecord is one persisted history entry for a humanize, rewrite
// or detect run.
type AnalysisRecord struct {
	ID              string            `json:"id"`
	Tool            string            `json:"tool"`
	InputWords      int               `json:"input_words"`
	InputSentences  int               `json:"input_sentences"`
	OutputWords     int               `json:"output_words"`
	OutputSentences int               `json:"output_sentences"`
	Percentages     map[Label]float64 `json:"percentages,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// Tool names recorded in the analysis history.
const (
	ToolHumanize = "humanize"
	ToolRewrite  = "rewrite"
	ToolDetect   = "detect"
)

// Pagination holds standard list pagination parameters.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}
