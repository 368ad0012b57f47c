package aiflow

// Budgets for externally sourced text embedded into prompts. Oversized inputs
// are truncated rather than rejected so a large page or document degrades the
// answer instead of failing the call.
const (
	// HTMLBudget caps scraped page content
	HTMLBudget = 30000
	// FileBudget caps extracted document text
	FileBudget = 20000
)

// Truncate returns s cut to at most limit characters. Counting is by rune so
// multi-byte text is never split mid-character.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
