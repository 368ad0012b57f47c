// Package csvimport parses uploaded CSV files into row objects keyed by the
// header row, with best-effort typing of numeric columns.
package csvimport

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Row is one CSV record keyed by header. Values are string, float64 or nil.
type Row map[string]any

// Parser reads a headered CSV stream into rows
type Parser struct {
	delimiter  rune
	lazyQuotes bool
	maxRows    int
}

// ParserOption is a functional option for Parser configuration
type ParserOption func(*Parser)

// WithDelimiter sets the field delimiter (default is comma)
func WithDelimiter(d rune) ParserOption {
	return func(p *Parser) {
		p.delimiter = d
	}
}

// WithMaxRows caps the number of parsed data rows (default 10000)
func WithMaxRows(n int) ParserOption {
	return func(p *Parser) {
		p.maxRows = n
	}
}

// NewParser creates a Parser
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{
		delimiter:  ',',
		lazyQuotes: true,
		maxRows:    10000,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse reads the full stream. The first record is the header row; every
// following record becomes a Row. Numeric-looking fields are converted to
// float64, empty fields become nil, everything else stays a string.
func (p *Parser) Parse(r io.Reader) ([]Row, []string, error) {
	buf := bufio.NewReader(r)

	// Strip UTF-8 BOM if present
	head, err := buf.Peek(3)
	if err != nil && err != io.EOF {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(head) >= 3 && head[0] == 0xEF && head[1] == 0xBB && head[2] == 0xBF {
		_, _ = buf.Discard(3)
	}
	if err := validateUTF8(buf); err != nil {
		return nil, nil, err
	}

	reader := csv.NewReader(buf)
	reader.Comma = p.delimiter
	reader.LazyQuotes = p.lazyQuotes
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("CSV file is empty")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read row %d: %w", len(rows)+2, err)
		}
		if len(rows) >= p.maxRows {
			return nil, nil, fmt.Errorf("CSV exceeds the %d row limit", p.maxRows)
		}

		row := make(Row, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i >= len(record) {
				row[header] = nil
				continue
			}
			row[header] = typedValue(record[i])
		}
		rows = append(rows, row)
	}

	return rows, headers, nil
}

// typedValue converts a CSV field to its best-fit type
func typedValue(field string) any {
	value := strings.TrimSpace(field)
	if value == "" {
		return nil
	}
	if n, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64); err == nil {
		return n
	}
	return value
}

func validateUTF8(r *bufio.Reader) error {
	const checkSize = 4096
	content, err := r.Peek(checkSize)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read file for encoding validation: %w", err)
	}
	// A partial rune at the end of the window is fine; back off to the last
	// rune boundary before validating.
	for len(content) > 0 && !utf8.Valid(content) {
		content = content[:len(content)-1]
		if len(content) < checkSize-utf8.UTFMax {
			return fmt.Errorf("file is not valid UTF-8 encoded")
		}
	}
	return nil
}
