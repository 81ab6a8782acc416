// Package keywords turns free text into a set of lowercase content words.
package keywords

import (
	"regexp"
	"sort"
	"strings"
)

// wordRe matches runs of Unicode word characters; only all-ASCII runs are
// kept, so accented words are dropped whole rather than split.
var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

var stopwords = toSet(
	"a", "an", "the", "is", "and", "or", "in", "on", "for", "to", "of", "with",
	"from", "by", "as", "at", "be", "this", "that", "it", "its", "are", "have",
	"has", "had", "was", "were", "s", "d", "ll", "m", "t", "re", "ve", "y",
	"ain", "aren", "couldn", "didn", "doesn", "hadn", "hasn", "haven", "isn",
	"ma", "mightn", "mustn", "needn", "don", "shan", "shouldn", "wasn", "weren",
	"won", "wouldn",
)

// Set is an unordered collection of keywords.
type Set map[string]struct{}

func toSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Extract lowercases text and keeps alphabetic words of three or more
// letters that are not stopwords.
func Extract(text string) Set {
	out := make(Set)
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if len(w) < 3 || !isASCIILower(w) {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

func isASCIILower(w string) bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// IsStopword reports whether w is in the fixed stopword list.
func IsStopword(w string) bool {
	_, ok := stopwords[strings.ToLower(w)]
	return ok
}

func (s Set) Has(w string) bool {
	_, ok := s[w]
	return ok
}

// Union returns a new set holding the words of s and o.
func (s Set) Union(o Set) Set {
	out := make(Set, len(s)+len(o))
	for w := range s {
		out[w] = struct{}{}
	}
	for w := range o {
		out[w] = struct{}{}
	}
	return out
}

// CountIn returns how many words of s are also in o.
func (s Set) CountIn(o Set) int {
	n := 0
	for w := range s {
		if o.Has(w) {
			n++
		}
	}
	return n
}

// Sorted returns the words in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
