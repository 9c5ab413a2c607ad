package render

import "strings"

// wrapText breaks text into lines no wider than width, as measured by
// measure. Explicit newlines are kept. Words wider than a full line are split
// between runes. An empty text yields one empty line.
func wrapText(text string, width float64, measure func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		lines = append(lines, wrapParagraph(para, width, measure)...)
	}
	return lines
}

func wrapParagraph(para string, width float64, measure func(string) float64) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := ""
	for _, w := range words {
		candidate := w
		if current != "" {
			candidate = current + " " + w
		}
		if measure(candidate) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if measure(w) <= width {
			current = w
			continue
		}
		pieces := splitWord(w, width, measure)
		lines = append(lines, pieces[:len(pieces)-1]...)
		current = pieces[len(pieces)-1]
	}
	return append(lines, current)
}

// splitWord cuts a single word into pieces that fit width. Each piece holds
// at least one rune so the loop always advances.
func splitWord(w string, width float64, measure func(string) float64) []string {
	var pieces []string
	runes := []rune(w)
	start := 0
	for start < len(runes) {
		end := start + 1
		for end < len(runes) && measure(string(runes[start:end+1])) <= width {
			end++
		}
		pieces = append(pieces, string(runes[start:end]))
		start = end
	}
	return pieces
}
