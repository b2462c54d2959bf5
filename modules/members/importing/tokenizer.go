package importing

import (
	"bytes"
	"strings"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Tokenize splits a raw CSV buffer into a header and data rows. The field
// delimiter is sniffed once from the header line; quoted fields may contain
// it. Blank lines are dropped. Row indices are 1-based display positions,
// the header counting as row 1.
func Tokenize(data []byte) (header []string, rows [][]string, err error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	lines := make([]string, 0, 64)
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return nil, nil, ErrEmptyFile
	}

	delimiter := detectDelimiter(lines[0])

	header = splitLine(lines[0], delimiter)
	rows = make([][]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		rows = append(rows, splitLine(line, delimiter))
	}
	return header, rows, nil
}

// detectDelimiter counts ';' and ',' on the first line only. Semicolon wins
// ties, as long as at least one is present.
func detectDelimiter(firstLine string) rune {
	semicolons := strings.Count(firstLine, ";")
	commas := strings.Count(firstLine, ",")
	if semicolons > 0 && semicolons >= commas {
		return ';'
	}
	return ','
}

// splitLine walks the line character by character. A double quote toggles
// quoted mode; the delimiter only terminates a field outside quotes. Fields
// come back trimmed with the quotes stripped.
func splitLine(line string, delimiter rune) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == delimiter && !inQuotes:
			fields = append(fields, strings.TrimSpace(current.String()))
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(current.String()))
	return fields
}
