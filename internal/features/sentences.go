package features

import "strings"

// SplitSentences splits text on the terminators '.', '!' and '?'. The
// terminators are discarded and each sentence is trimmed of surrounding
// whitespace; empty pieces are dropped.
func SplitSentences(text string) []string {
	pieces := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	sentences := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		trimmed := strings.TrimSpace(piece)
		if trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}
