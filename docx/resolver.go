package docx

import (
	"strconv"
	"strings"
)

// builtinHeadings maps the style IDs Word uses for its built-in headings.
var builtinHeadings = map[string]int{
	"heading1": 1, "heading2": 2, "heading3": 3,
	"heading4": 4, "heading5": 5, "heading6": 6,
	"heading7": 7, "heading8": 8, "heading9": 9,
	"title": 1, // Title is typically H1 equivalent
}

// StyleResolver answers heading questions about paragraph styles, following
// basedOn inheritance.
type StyleResolver struct {
	styles map[string]*styleDefXML
}

// NewStyleResolver creates a resolver from parsed styles. A nil styles
// value yields a resolver that only knows the built-in heading IDs.
func NewStyleResolver(styles *stylesXML) *StyleResolver {
	sr := &StyleResolver{styles: make(map[string]*styleDefXML)}
	if styles == nil {
		return sr
	}
	for i := range styles.Styles {
		style := &styles.Styles[i]
		sr.styles[strings.ToLower(style.StyleID)] = style
	}
	return sr
}

// HeadingLevel returns the heading level (1-9) of a paragraph style, or 0
// if the style is not a heading.
func (sr *StyleResolver) HeadingLevel(styleID string) int {
	if styleID == "" {
		return 0
	}
	id := strings.ToLower(styleID)
	if level, ok := builtinHeadings[id]; ok {
		return level
	}

	seen := make(map[string]bool)
	for id != "" && !seen[id] {
		seen[id] = true
		style, ok := sr.styles[id]
		if !ok {
			return 0
		}
		// OutlineLvl is 0-based in OOXML
		if level := parseOutlineLevel(style.PPr.OutlineLvl.Val); level >= 0 {
			return level + 1
		}
		if level, ok := builtinHeadings[strings.ReplaceAll(strings.ToLower(style.Name.Val), " ", "")]; ok {
			return level
		}
		id = strings.ToLower(style.BasedOn.Val)
	}
	return 0
}

// StyleName returns the display name of a style, or "" if unknown.
func (sr *StyleResolver) StyleName(styleID string) string {
	if style, ok := sr.styles[strings.ToLower(styleID)]; ok {
		return style.Name.Val
	}
	return ""
}

// parseOutlineLevel parses an outline level string. It returns -1 for
// empty, malformed or body-text (9) levels.
func parseOutlineLevel(s string) int {
	level, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || level < 0 || level > 8 {
		return -1
	}
	return level
}
