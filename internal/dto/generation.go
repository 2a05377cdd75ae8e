package dto

// GenerateRequest is the API request for question generation.
// @Description Request body for generating questions from raw text
type GenerateRequest struct {
	Title             string   `json:"title"`
	Content           string   `json:"content"`
	Count             int      `json:"count"`
	QuestionTypes     []string `json:"question_types,omitempty"`
	MinDifficulty     float64  `json:"min_difficulty"`
	MaxDifficulty     float64  `json:"max_difficulty"`
	PreferredSections []string `json:"preferred_sections,omitempty"`
	ExcludedKeywords  []string `json:"excluded_keywords,omitempty"`
}

// QuestionResponse represents one generated question in the API response
type QuestionResponse struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Question        string   `json:"question"`
	Answer          string   `json:"answer"`
	Options         []string `json:"options,omitempty"`
	Difficulty      float64  `json:"difficulty"`
	Explanation     string   `json:"explanation,omitempty"`
	RelatedKeywords []string `json:"related_keywords"`
	SourceSection   string   `json:"source_section"`
	Context         string   `json:"context"`
}

// GenerateResponse carries the generated question set
type GenerateResponse struct {
	Questions []QuestionResponse `json:"questions"`
	Count     int                `json:"count"`
}

// ExtractKeywordsRequest is the API request for standalone keyword
// extraction. Method selects the extractor: "frequency" (default) or
// "tfidf".
type ExtractKeywordsRequest struct {
	Content string `json:"content"`
	Method  string `json:"method,omitempty"`
}

// KeywordResponse represents one extracted keyword
type KeywordResponse struct {
	Word       string   `json:"word"`
	Importance float64  `json:"importance"`
	Frequency  int      `json:"frequency"`
	Context    []string `json:"context"`
}

// ExtractKeywordsResponse carries the extracted keywords
type ExtractKeywordsResponse struct {
	Keywords []KeywordResponse `json:"keywords"`
}

// SegmentRequest is the API request for standalone sentence segmentation
type SegmentRequest struct {
	Content string `json:"content"`
}

// SegmentResponse carries the scored, filtered sentences
type SegmentResponse struct {
	Sentences []string `json:"sentences"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
