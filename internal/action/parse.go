package action

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Literal delimiters of an action block inside assistant text.
const (
	StartTag = "<ACTION>"
	EndTag   = "</ACTION>"
)

var blockRe = regexp.MustCompile(`(?s)\s*` + regexp.QuoteMeta(StartTag) + `\s*(\{.*?\})\s*` + regexp.QuoteMeta(EndTag) + `\s*`)

// Parse extracts the first action block from text. When there is no block,
// or the first block does not hold a JSON object, it returns (nil, trimmed
// text). Otherwise every well-formed block is removed from the returned text,
// so a later turn never sees a proposal it has already made.
func Parse(text string) (Action, string) {
	loc := blockRe.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil, strings.TrimSpace(text)
	}
	a, err := Decode([]byte(text[loc[2]:loc[3]]))
	if err != nil {
		return nil, strings.TrimSpace(text)
	}
	return a, clean(text)
}

// clean removes action blocks whose payload decodes as an object, joining the
// pieces around each block with a single space.
func clean(text string) string {
	cleaned := blockRe.ReplaceAllStringFunc(text, func(block string) string {
		m := blockRe.FindStringSubmatch(block)
		if _, err := Decode([]byte(m[1])); err != nil {
			return block
		}
		return " "
	})
	return strings.TrimSpace(cleaned)
}

// Render encodes a as a wire block suitable for embedding in reply text.
func Render(a Action) (string, error) {
	b, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("marshal action: %w", err)
	}
	return StartTag + string(b) + EndTag, nil
}
