package formats

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

func titles(c Collection) []string {
	out := make([]string, len(c.Levels))
	for i, l := range c.Levels {
		out[i] = l.Title()
	}
	return out
}

func TestParseSLCDocumentOrder(t *testing.T) {
	doc := `<SokobanLevels>
  <Title> Sample </Title>
  <Description>two levels</Description>
  <LevelCollection Copyright="someone">
    <Level Id="first"><L>#@$.#</L></Level>
    <Level Id="second">
      <L> ####</L>
      <L>#@$.#</L>
      <L> ####</L>
    </Level>
  </LevelCollection>
</SokobanLevels>`

	c, err := ParseSLC(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseSLC() failed: %v", err)
	}

	if diff := cmp.Diff([]string{"first", "second"}, titles(c)); diff != "" {
		t.Errorf("level titles mismatch (-want +got):\n%s", diff)
	}
	if c.Title != "Sample" {
		t.Errorf("Title = %q, expected %q", c.Title, "Sample")
	}
	if c.Description != "two levels" {
		t.Errorf("Description = %q, expected %q", c.Description, "two levels")
	}
	if c.Author != "someone" {
		t.Errorf("Author = %q, expected %q", c.Author, "someone")
	}

	w, h := c.Levels[1].Extents()
	if w != 5 || h != 3 {
		t.Errorf("second level Extents() = (%d, %d), expected (5, 3)", w, h)
	}
	if c.Levels[1].Player() != core.NewPosition(1, 1) {
		t.Errorf("second level Player() = %v, expected (1,1)", c.Levels[1].Player())
	}
}

func TestParseSLCIgnoresTextOutsideRows(t *testing.T) {
	doc := `<Level Id="x">
	stray text
	<L>@$.</L>
	<Comment>not a row</Comment>
</Level>`

	c, err := ParseSLC(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseSLC() failed: %v", err)
	}
	if len(c.Levels) != 1 {
		t.Fatalf("expected 1 level, got %d", len(c.Levels))
	}
	w, h := c.Levels[0].Extents()
	if w != 3 || h != 1 {
		t.Errorf("Extents() = (%d, %d), expected (3, 1)", w, h)
	}
}

func TestParseSLCMissingID(t *testing.T) {
	doc := `<C><Level Id="named"><L>@</L></Level><Level><L>@</L></Level></C>`

	c, err := ParseSLC(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("ParseSLC() failed: %v", err)
	}
	// A level without an Id does not inherit the previous title.
	if diff := cmp.Diff([]string{"named", ""}, titles(c)); diff != "" {
		t.Errorf("level titles mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSLCEmptyRowKeepsRowStructure(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty element", `<Level><L>@</L><L></L><L>$.</L></Level>`},
		{"self-closing", `<Level><L>@</L><L/><L>$.</L></Level>`},
		{"whitespace only", `<Level><L>@</L><L>   </L><L>$.</L></Level>`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := ParseSLC(strings.NewReader(tc.doc))
			if err != nil {
				t.Fatalf("ParseSLC() failed: %v", err)
			}
			if !c.Levels[0].IsBox(core.NewPosition(2, 0)) {
				t.Errorf("box should be on row 2, boxes = %v", c.Levels[0].Boxes())
			}
		})
	}
}

func TestParseSLCInvalidChar(t *testing.T) {
	doc := `<C>
  <Level Id="ok"><L>@</L></Level>
  <Level Id="bad"><L>#@#</L><L>#x#</L></Level>
  <Level Id="never"><L>@</L></Level>
</C>`

	c, err := ParseSLC(strings.NewReader(doc))
	if len(c.Levels) != 0 {
		t.Error("a failed parse should not return partial levels")
	}

	var blockErr *BlockError
	if !errors.As(err, &blockErr) {
		t.Fatalf("error = %v, expected *BlockError", err)
	}
	if blockErr.Index != 1 || blockErr.Title != "bad" {
		t.Errorf("BlockError = {%d %q}, expected {1 \"bad\"}", blockErr.Index, blockErr.Title)
	}

	var invalid *core.InvalidCharError
	if !errors.As(err, &invalid) {
		t.Fatalf("error = %v, expected to wrap *core.InvalidCharError", err)
	}
	if invalid.Char != 'x' || invalid.Pos != core.NewPosition(1, 1) {
		t.Errorf("InvalidCharError = %q at %v, expected 'x' at (1,1)", invalid.Char, invalid.Pos)
	}
}

func TestParseSLCMalformed(t *testing.T) {
	doc := `<C><Level Id="a"><L>@</L></C>`

	_, err := ParseSLC(strings.NewReader(doc))
	var syntaxErr *xml.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("error = %v, expected *xml.SyntaxError", err)
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`title: Y
author: me
levels:
  - id: rows
    rows:
      - " ####"
      - "#@$.#"
      - " ####"
  - id: block
    map: |
      #@$.#
`)

	c, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() failed: %v", err)
	}
	if diff := cmp.Diff([]string{"rows", "block"}, titles(c)); diff != "" {
		t.Errorf("level titles mismatch (-want +got):\n%s", diff)
	}
	if c.Title != "Y" || c.Author != "me" {
		t.Errorf("metadata = (%q, %q), expected (\"Y\", \"me\")", c.Title, c.Author)
	}

	w, h := c.Levels[0].Extents()
	if w != 5 || h != 3 {
		t.Errorf("rows level Extents() = (%d, %d), expected (5, 3)", w, h)
	}
	w, h = c.Levels[1].Extents()
	if w != 5 || h != 1 {
		t.Errorf("block level Extents() = (%d, %d), expected (5, 1)", w, h)
	}
}

func TestParseYAMLInvalidChar(t *testing.T) {
	data := []byte("levels:\n  - id: a\n    rows: [\"@?\"]\n")

	_, err := ParseYAML(data)
	var blockErr *BlockError
	if !errors.As(err, &blockErr) {
		t.Fatalf("error = %v, expected *BlockError", err)
	}
	if blockErr.Index != 0 {
		t.Errorf("Index = %d, expected 0", blockErr.Index)
	}
}

func TestParseYAMLMalformed(t *testing.T) {
	if _, err := ParseYAML([]byte("levels: [unclosed")); err == nil {
		t.Error("ParseYAML() should fail on malformed YAML")
	}
}
