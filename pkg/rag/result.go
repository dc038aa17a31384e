package rag

// Result is the pipeline's stable output contract. Exactly one of Answer or
// Err is set: a failed request never carries a partial answer, and a
// successful one never carries an error. On failure Passages is empty.
type Result struct {
	Answer   string    `json:"answer"`
	Passages []Passage `json:"passages"`
	Language string    `json:"language"`
	QueryEN  string    `json:"query_en,omitempty"` // working-language query, kept for debugging
	Err      string    `json:"error,omitempty"`
}

// Failed reports whether the pipeline aborted before producing an answer.
func (r *Result) Failed() bool {
	return r.Err != ""
}
