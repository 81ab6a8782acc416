package outline

import "sort"

// StyleProfile holds the document-wide typography statistics that the
// heading classifier compares every line against.
type StyleProfile struct {
	BodyFontSize float64
	// HeadingSizes are distinct sizes above the body size, largest first.
	// Index i maps to level H(i+1).
	HeadingSizes []float64
	CommonColors []Color
}

// Profile samples the first p.ProfilePages pages.
func Profile(pages []Page, p Params) (StyleProfile, error) {
	var sizes []float64
	var colors []Color
	for i := 0; i < len(pages) && i < p.ProfilePages; i++ {
		for _, w := range pages[i].Words {
			sizes = append(sizes, w.FontSize)
			if w.Fill.Valid() {
				colors = append(colors, w.Fill)
			}
		}
	}
	if len(sizes) == 0 {
		return StyleProfile{}, ErrNoLayoutSignal
	}

	body := mostCommon(sizes, 1)[0]

	seen := make(map[float64]bool)
	var larger []float64
	for _, s := range sizes {
		if s > body && !seen[s] {
			seen[s] = true
			larger = append(larger, s)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(larger)))
	if len(larger) > p.MaxHeadingSizes {
		larger = larger[:p.MaxHeadingSizes]
	}

	return StyleProfile{
		BodyFontSize: body,
		HeadingSizes: larger,
		CommonColors: mostCommon(colors, p.CommonColors),
	}, nil
}

// mostCommon returns up to n values ordered by descending frequency; equal
// counts keep first-seen order.
func mostCommon[T comparable](values []T, n int) []T {
	counts := make(map[T]int)
	var order []T
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}
	sort.SliceStable(order, func(i, j int) bool { return counts[order[i]] > counts[order[j]] })
	if len(order) > n {
		order = order[:n]
	}
	return order
}

// headingRank returns the index of size in HeadingSizes, or -1.
func (s StyleProfile) headingRank(size float64) int {
	for i, h := range s.HeadingSizes {
		if h == size {
			return i
		}
	}
	return -1
}

// LevelFor maps a heading's font size to a level.
func (s StyleProfile) LevelFor(size float64) Level {
	if r := s.headingRank(size); r >= 0 {
		return Level(r + 1)
	}
	switch {
	case len(s.HeadingSizes) == 0:
		return H3
	case size >= s.HeadingSizes[0]:
		return H1
	case len(s.HeadingSizes) > 1 && size >= s.HeadingSizes[1]:
		return H2
	default:
		return H3
	}
}

func (s StyleProfile) isCommonColor(c Color) bool {
	for _, cc := range s.CommonColors {
		if cc == c {
			return true
		}
	}
	return false
}
