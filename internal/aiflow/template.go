package aiflow

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

var promptFuncs = template.FuncMap{
	"upper": strings.ToUpper,
	"lower": strings.ToLower,
	"trim":  strings.TrimSpace,
	"join":  strings.Join,
}

// mustTemplate parses a prompt template at flow registration. Templates are
// restricted to substitution, conditionals and iteration over the typed input;
// a parse failure is a programming error.
func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Funcs(promptFuncs).Option("missingkey=error").Parse(text))
}

func renderPrompt(t *template.Template, in any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, in); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}
