// Package textstats computes word, character, sentence and paragraph counts for free-form text.
package textstats

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// WordsPerMinute is the fixed reading speed used for ReadingTimeMinutes.
const WordsPerMinute = 200

// Stats holds the metrics derived from a text.
type Stats struct {
	WordCount              int
	CharacterCount         int
	CharacterCountNoSpaces int
	SentenceCount          int
	ParagraphCount         int
	ReadingTimeMinutes     int
	AvgWordLength          float64
}

// Compute derives Stats from text. It accepts any input, including empty or
// whitespace-only strings. Lengths are measured in runes.
func Compute(text string) Stats {
	words := len(strings.FieldsFunc(text, isSpace))
	chars := utf8.RuneCountInString(text)
	noSpaces := 0
	for _, r := range text {
		if !isSpace(r) {
			noSpaces++
		}
	}
	return derive(Stats{
		WordCount:              words,
		CharacterCount:         chars,
		CharacterCountNoSpaces: noSpaces,
		SentenceCount:          countSentences(text),
		ParagraphCount:         countParagraphs(text),
	})
}

// Combine sums the counts of parts and re-derives reading time and average
// word length from the totals.
func Combine(parts ...Stats) Stats {
	var total Stats
	for _, p := range parts {
		total.WordCount += p.WordCount
		total.CharacterCount += p.CharacterCount
		total.CharacterCountNoSpaces += p.CharacterCountNoSpaces
		total.SentenceCount += p.SentenceCount
		total.ParagraphCount += p.ParagraphCount
	}
	return derive(total)
}

func derive(s Stats) Stats {
	s.ReadingTimeMinutes = (s.WordCount + WordsPerMinute - 1) / WordsPerMinute
	s.AvgWordLength = 0
	if s.WordCount > 0 {
		avg := float64(s.CharacterCountNoSpaces) / float64(s.WordCount)
		s.AvgWordLength = math.Round(avg*100) / 100
	}
	return s
}

// isSpace reports whether r separates words. The set is the Unicode
// White_Space property without U+0085, plus U+FEFF.
func isSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\uFEFF':
		return true
	}
	return unicode.IsSpace(r)
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// countSentences counts the segments between runs of terminators that hold
// at least one non-space rune.
func countSentences(text string) int {
	count := 0
	content := false
	for _, r := range text {
		switch {
		case isTerminator(r):
			if content {
				count++
				content = false
			}
		case !isSpace(r):
			content = true
		}
	}
	if content {
		count++
	}
	return count
}

// countParagraphs counts the non-blank segments separated by a whitespace
// run containing at least two newlines.
func countParagraphs(text string) int {
	count := 0
	open := false
	newlines := 0
	for _, r := range text {
		if isSpace(r) {
			if r == '\n' {
				newlines++
			}
			continue
		}
		if !open || newlines >= 2 {
			count++
			open = true
		}
		newlines = 0
	}
	return count
}
