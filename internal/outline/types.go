// Package outline infers a document outline (title plus H1-H3 headings that
// own their body text) from positioned word tokens.
package outline

import (
	"errors"
	"fmt"
)

// ErrNoLayoutSignal is returned when a document carries no font size
// information at all, typically a scanned image-only PDF.
var ErrNoLayoutSignal = errors.New("no layout signal")

// WordToken is one positioned run of glyphs with its font metadata.
// Coordinates are top-down: Top < Bottom for a normal word.
type WordToken struct {
	Text     string
	Top      float64
	Bottom   float64
	X0       float64
	FontSize float64
	FontName string
	Fill     Color
}

// Color is a fill colour with up to four components (gray, RGB or CMYK).
// The zero value means the token has no known colour.
type Color struct {
	N int
	C [4]float64
}

func Gray(g float64) Color { return Color{N: 1, C: [4]float64{g}} }

func RGB(r, g, b float64) Color { return Color{N: 3, C: [4]float64{r, g, b}} }

func CMYK(c, m, y, k float64) Color { return Color{N: 4, C: [4]float64{c, m, y, k}} }

// Valid reports whether the colour is known.
func (c Color) Valid() bool { return c.N > 0 }

// Page is the token stream of one page.
type Page struct {
	Number int
	Height float64
	Words  []WordToken
}

// Level is a heading level.
type Level int

const (
	LevelNone Level = iota
	H1
	H2
	H3
)

func (l Level) String() string {
	switch l {
	case H1:
		return "H1"
	case H2:
		return "H2"
	case H3:
		return "H3"
	default:
		return ""
	}
}

func (l Level) MarshalText() ([]byte, error) {
	if l < H1 || l > H3 {
		return nil, fmt.Errorf("invalid heading level %d", int(l))
	}
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	switch string(b) {
	case "H1":
		*l = H1
	case "H2":
		*l = H2
	case "H3":
		*l = H3
	default:
		return fmt.Errorf("invalid heading level %q", string(b))
	}
	return nil
}

// Section is a heading together with the body text that follows it.
type Section struct {
	Level   Level  `json:"level"`
	Text    string `json:"text"`
	Page    int    `json:"page"`
	Content string `json:"content"`
}

// DocumentOutline is the result of Build for a single document.
type DocumentOutline struct {
	Title    string    `json:"title"`
	Sections []Section `json:"outline"`
}
