package outline

import "strings"

// makeWord creates a token whose bottom sits one font size below its top.
func makeWord(text string, x0, top, size float64, font string) WordToken {
	return WordToken{
		Text:     text,
		Top:      top,
		Bottom:   top + size,
		X0:       x0,
		FontSize: size,
		FontName: font,
	}
}

// makeLine splits text on spaces and lays the words out left to right.
func makeLine(text string, x0, top, size float64, font string) []WordToken {
	var out []WordToken
	x := x0
	for _, f := range strings.Fields(text) {
		out = append(out, makeWord(f, x, top, size, font))
		x += float64(len(f))*size*0.5 + size*0.25
	}
	return out
}

func makePage(number int, lines ...[]WordToken) Page {
	p := Page{Number: number, Height: 792}
	for _, l := range lines {
		p.Words = append(p.Words, l...)
	}
	return p
}
