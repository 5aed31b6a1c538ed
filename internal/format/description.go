package format

import (
	"strings"
	"unicode/utf8"
)

const (
	// HigherLevelsHeader prefixes the synthetic block built from higher_level
	HigherLevelsHeader = "At Higher Levels."

	headerMaxLength = 25
)

// notHeaders lists short fragments known to be prose.
// "- buildings" is a list item in Commune with Nature.
var notHeaders = map[string]bool{
	"- buildings": true,
}

// Block is one paragraph of a spell description. Header, when set, is shown
// in bold ahead of Text.
type Block struct {
	Header string `json:"header,omitempty"`
	Text   string `json:"text"`
}

// IsHeader guesses whether a description fragment is a section label rather
// than prose. The API carries no markup for this, so anything shorter than 25
// characters counts as a header unless it is a known exception.
func IsHeader(fragment string) bool {
	if notHeaders[fragment] {
		return false
	}
	return utf8.RuneCountInString(fragment) < headerMaxLength
}

// Description builds the description blocks. A header fragment is merged into
// the fragment after it, with a period added if it lacks one. A final
// HigherLevelsHeader block is appended when higherLevel is non-empty.
func Description(desc []string, higherLevel []string) []Block {
	blocks, _ := describe(desc, higherLevel)
	return blocks
}

func describe(desc []string, higherLevel []string) ([]Block, []Diagnostic) {
	blocks := []Block{}
	var diagnostics []Diagnostic

	for i, fragment := range desc {
		if IsHeader(fragment) {
			// picked up by the next fragment; a header with no prose after it is dropped
			if i == len(desc)-1 || IsHeader(desc[i+1]) {
				diagnostics = append(diagnostics, Diagnostic{
					Kind:   DiagnosticOrphanHeader,
					Field:  "desc",
					Detail: fragment,
				})
			}
			continue
		}

		if i > 0 && IsHeader(desc[i-1]) {
			blocks = append(blocks, Block{Header: headerText(desc[i-1]), Text: fragment})
			continue
		}
		blocks = append(blocks, Block{Text: fragment})
	}

	if len(higherLevel) > 0 {
		blocks = append(blocks, Block{
			Header: HigherLevelsHeader,
			Text:   strings.Join(higherLevel, " "),
		})
	}

	return blocks, diagnostics
}

func headerText(header string) string {
	if strings.HasSuffix(header, ".") {
		return header
	}
	return header + "."
}
