package docx

import "testing"

func TestNewStyleResolver_Nil(t *testing.T) {
	sr := NewStyleResolver(nil)
	if sr == nil {
		t.Fatal("NewStyleResolver(nil) returned nil")
	}
	if got := sr.HeadingLevel("Heading2"); got != 2 {
		t.Errorf("HeadingLevel(Heading2) = %d, want 2", got)
	}
	if got := sr.HeadingLevel("Normal"); got != 0 {
		t.Errorf("HeadingLevel(Normal) = %d, want 0", got)
	}
}

func TestStyleResolver_BuiltInHeadings(t *testing.T) {
	sr := NewStyleResolver(nil)
	tests := []struct {
		styleID string
		want    int
	}{
		{"Heading1", 1},
		{"heading3", 3},
		{"HEADING9", 9},
		{"Title", 1},
		{"", 0},
		{"BodyText", 0},
	}
	for _, tt := range tests {
		if got := sr.HeadingLevel(tt.styleID); got != tt.want {
			t.Errorf("HeadingLevel(%q) = %d, want %d", tt.styleID, got, tt.want)
		}
	}
}

func TestStyleResolver_Inheritance(t *testing.T) {
	styles := &stylesXML{Styles: []styleDefXML{
		{StyleID: "Base", Name: styleNameXML{Val: "Base"}, PPr: paragraphPropsXML{OutlineLvl: outlineLvlXML{Val: "1"}}},
		{StyleID: "Child", Name: styleNameXML{Val: "Child"}, BasedOn: basedOnXML{Val: "Base"}},
		{StyleID: "Named", Name: styleNameXML{Val: "heading 4"}},
		{StyleID: "LoopA", BasedOn: basedOnXML{Val: "LoopB"}},
		{StyleID: "LoopB", BasedOn: basedOnXML{Val: "LoopA"}},
		{StyleID: "Body", PPr: paragraphPropsXML{OutlineLvl: outlineLvlXML{Val: "9"}}},
	}}
	sr := NewStyleResolver(styles)

	tests := []struct {
		styleID string
		want    int
	}{
		{"Base", 2},
		{"Child", 2},
		{"Named", 4},
		{"LoopA", 0},
		{"Body", 0},
		{"Missing", 0},
	}
	for _, tt := range tests {
		if got := sr.HeadingLevel(tt.styleID); got != tt.want {
			t.Errorf("HeadingLevel(%q) = %d, want %d", tt.styleID, got, tt.want)
		}
	}

	if got := sr.StyleName("child"); got != "Child" {
		t.Errorf("StyleName(child) = %q, want Child", got)
	}
	if got := sr.StyleName("nope"); got != "" {
		t.Errorf("StyleName(nope) = %q, want empty", got)
	}
}

func TestParseOutlineLevel(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"0", 0},
		{"3", 3},
		{"8", 8},
		{"9", -1},
		{"", -1},
		{"x", -1},
		{"-1", -1},
	}
	for _, tt := range tests {
		if got := parseOutlineLevel(tt.input); got != tt.want {
			t.Errorf("parseOutlineLevel(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
