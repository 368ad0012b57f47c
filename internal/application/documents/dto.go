package documents

// ContractParseResponse mirrors the contract parse flow's output. IsContract
// is false when the uploaded file is not a contract; that is a successful
// response, not an error.
type ContractParseResponse struct {
	IsContract     bool     `json:"is_contract"`
	Parties        []string `json:"parties"`
	EffectiveDate  string   `json:"effective_date"`
	ExpiryDate     string   `json:"expiry_date"`
	PaymentTerms   string   `json:"payment_terms"`
	KeyObligations []string `json:"key_obligations"`
	Risks          []string `json:"risks"`
	Summary        string   `json:"summary"`
}

// SummarizeRequest asks for a summary of pasted document content
type SummarizeRequest struct {
	Content string `json:"content" binding:"required"`
	Focus   string `json:"focus"`
}

// SummarizeResponse mirrors the document summary flow's output
type SummarizeResponse struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
}

// DraftRequest asks for a drafted document
type DraftRequest struct {
	DocumentType string   `json:"document_type" binding:"required"`
	Subject      string   `json:"subject" binding:"required"`
	Tone         string   `json:"tone"`
	Points       []string `json:"points"`
}

// DraftResponse mirrors the document draft flow's output
type DraftResponse struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// CategorizeRequest asks for a category for pasted document content
type CategorizeRequest struct {
	FileName string `json:"file_name"`
	Content  string `json:"content" binding:"required"`
}

// CategorizeResponse mirrors the document categorize flow's output
type CategorizeResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason"`
}
