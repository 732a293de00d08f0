// Package formats provides the level collection container parsers.
package formats

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/ianaindex"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// Collection is a parsed container: metadata plus levels in play order.
type Collection struct {
	Title       string
	Description string
	Author      string
	Levels      []*core.Level
}

// BlockError reports a level block rejected by the level grammar.
type BlockError struct {
	Index int // 0-based position of the block in the container
	Title string
	Err   error
}

func (e *BlockError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("level %d (%s): %v", e.Index+1, e.Title, e.Err)
	}
	return fmt.Sprintf("level %d: %v", e.Index+1, e.Err)
}

func (e *BlockError) Unwrap() error {
	return e.Err
}

// SLC element and attribute names.
const (
	slcCollection  = "LevelCollection"
	slcLevel       = "Level"
	slcRow         = "L"
	slcTitle       = "Title"
	slcDescription = "Description"
	slcLevelID     = "Id"
	slcCopyright   = "Copyright"
)

// ParseSLC reads an SLC level collection (XML). Each Level element holds
// one L element per grid row; its Id attribute becomes the level title.
// Levels are returned in document order.
//
// XML syntax errors are returned as-is from encoding/xml; a level rejected
// by the grammar aborts the whole parse with a *BlockError.
func ParseSLC(r io.Reader) (Collection, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charsetReader

	var (
		c          Collection
		collecting bool // inside an L element
		inLevel    bool
		block      strings.Builder
		title      string
		field      string // top-level text element being captured
		text       strings.Builder
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Collection{}, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case slcCollection:
				c.Author = attr(t, slcCopyright)
			case slcLevel:
				inLevel = true
				title = attr(t, slcLevelID)
				block.Reset()
			case slcRow:
				collecting = true
			case slcTitle, slcDescription:
				if !inLevel {
					field = t.Name.Local
					text.Reset()
				}
			}

		case xml.EndElement:
			switch t.Name.Local {
			case slcRow:
				if collecting {
					block.WriteByte('\n')
				}
				collecting = false
			case slcLevel:
				level, err := core.Parse(block.String())
				if err != nil {
					return Collection{}, &BlockError{Index: len(c.Levels), Title: title, Err: err}
				}
				level.SetTitle(title)
				c.Levels = append(c.Levels, level)
				block.Reset()
				inLevel = false
				collecting = false
			case slcTitle:
				if field == slcTitle {
					c.Title = strings.TrimSpace(text.String())
					field = ""
				}
			case slcDescription:
				if field == slcDescription {
					c.Description = strings.TrimSpace(text.String())
					field = ""
				}
			}

		case xml.CharData:
			switch {
			case collecting:
				block.Write(t)
			case field != "":
				text.Write(t)
			}
		}
	}

	return c, nil
}

// attr returns the value of the named attribute, or "" if absent.
func attr(el xml.StartElement, name string) string {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// charsetReader decodes non UTF-8 documents (many published SLC files are
// ISO-8859-1 or windows-1252).
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", label, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", label)
	}
	return enc.NewDecoder().Reader(input), nil
}
