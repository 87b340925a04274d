package textstats

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComputeEmpty(t *testing.T) {
	got := Compute("")
	if diff := cmp.Diff(Stats{}, got); diff != "" {
		t.Fatalf("unexpected stats (-want +got):\n%s", diff)
	}
}

func TestComputeWhitespaceOnly(t *testing.T) {
	got := Compute("   ")
	want := Stats{CharacterCount: 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected stats (-want +got):\n%s", diff)
	}
}

func TestComputeSimpleSentence(t *testing.T) {
	got := Compute("Hello world.")
	want := Stats{
		WordCount:              2,
		CharacterCount:         12,
		CharacterCountNoSpaces: 11,
		SentenceCount:          1,
		ParagraphCount:         1,
		ReadingTimeMinutes:     1,
		AvgWordLength:          5.5,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected stats (-want +got):\n%s", diff)
	}
}

func TestComputeSentences(t *testing.T) {
	cases := map[string]int{
		"A. B! C?":            3,
		"no punctuation":      1,
		"...":                 0,
		"Wait?!! What...":     2,
		"Mr. Smith paid 3.14": 3,
		" . ! ? ":             0,
	}
	for text, want := range cases {
		if got := Compute(text).SentenceCount; got != want {
			t.Fatalf("sentences for %q: expected %d, got %d", text, want, got)
		}
	}
}

func TestComputePunctuationOnlyCountsWords(t *testing.T) {
	got := Compute("... !!!")
	if got.WordCount != 2 {
		t.Fatalf("expected 2 words, got %d", got.WordCount)
	}
	if got.SentenceCount != 0 {
		t.Fatalf("expected 0 sentences, got %d", got.SentenceCount)
	}
}

func TestComputeParagraphs(t *testing.T) {
	cases := map[string]int{
		"Para one.\n\nPara two.":       2,
		"line one\nline two":           1,
		"one\n  \t\n two\n\n\n\nthree": 3,
		"\n\n\nlead and trail\n\n\n":   1,
		"windows\r\n\r\nbreaks":        2,
		"\n \n":                        0,
	}
	for text, want := range cases {
		if got := Compute(text).ParagraphCount; got != want {
			t.Fatalf("paragraphs for %q: expected %d, got %d", text, want, got)
		}
	}
}

func TestComputeCountsRunes(t *testing.T) {
	got := Compute("héllo wörld")
	if got.CharacterCount != 11 {
		t.Fatalf("expected 11 characters, got %d", got.CharacterCount)
	}
	if got.CharacterCountNoSpaces != 10 {
		t.Fatalf("expected 10 non-space characters, got %d", got.CharacterCountNoSpaces)
	}
}

func TestComputeRemovesInteriorWhitespace(t *testing.T) {
	got := Compute("  a\tb\n c  ")
	if got.WordCount != 3 {
		t.Fatalf("expected 3 words, got %d", got.WordCount)
	}
	if got.CharacterCount != 10 || got.CharacterCountNoSpaces != 3 {
		t.Fatalf("unexpected character counts: %+v", got)
	}
	if got.AvgWordLength != 1 {
		t.Fatalf("expected avg 1, got %v", got.AvgWordLength)
	}
}

func TestComputeAvgWordLengthRounding(t *testing.T) {
	got := Compute("ab abc abcd")
	if got.AvgWordLength != 3 {
		t.Fatalf("expected 3, got %v", got.AvgWordLength)
	}
	got = Compute("a bb bb")
	if got.AvgWordLength != 1.67 {
		t.Fatalf("expected 1.67, got %v", got.AvgWordLength)
	}
}

func TestReadingTime(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 199: 1, 200: 1, 201: 2, 400: 2, 401: 3}
	for words, want := range cases {
		text := strings.TrimSpace(strings.Repeat("w ", words))
		got := Compute(text)
		if got.WordCount != words {
			t.Fatalf("expected %d words, got %d", words, got.WordCount)
		}
		if got.ReadingTimeMinutes != want {
			t.Fatalf("reading time for %d words: expected %d, got %d", words, want, got.ReadingTimeMinutes)
		}
	}
}

func TestReadingTimeMonotonic(t *testing.T) {
	prev := 0
	var b strings.Builder
	for i := 0; i < 1000; i++ {
		b.WriteString("word ")
		got := Compute(b.String()).ReadingTimeMinutes
		if got < prev {
			t.Fatalf("reading time decreased at %d words: %d < %d", i+1, got, prev)
		}
		prev = got
	}
}

func TestComputeIdempotent(t *testing.T) {
	text := "First line.\n\nSecond paragraph! Is it? Yes."
	if diff := cmp.Diff(Compute(text), Compute(text)); diff != "" {
		t.Fatalf("repeated calls differ:\n%s", diff)
	}
}

func TestComputeAppendNeverDecreasesCharacters(t *testing.T) {
	base := Compute("some text ")
	appended := Compute("some text " + "x!é")
	if appended.CharacterCount < base.CharacterCount {
		t.Fatalf("character count decreased")
	}
	if appended.CharacterCountNoSpaces < base.CharacterCountNoSpaces {
		t.Fatalf("non-space character count decreased")
	}
}

func TestCombine(t *testing.T) {
	got := Combine(Compute("Hello world."), Compute("a bb"))
	want := Stats{
		WordCount:              4,
		CharacterCount:         16,
		CharacterCountNoSpaces: 14,
		SentenceCount:          2,
		ParagraphCount:         2,
		ReadingTimeMinutes:     1,
		AvgWordLength:          3.5,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected combined stats (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(Stats{}, Combine()); diff != "" {
		t.Fatalf("expected zero stats for no parts:\n%s", diff)
	}
}

func TestComputeWhitespaceSet(t *testing.T) {
	got := Compute("\uFEFF")
	if got.WordCount != 0 || got.CharacterCount != 1 || got.CharacterCountNoSpaces != 0 {
		t.Fatalf("expected BOM to count as whitespace, got %+v", got)
	}
	got = Compute("a\u0085b")
	if got.WordCount != 1 || got.CharacterCountNoSpaces != 3 {
		t.Fatalf("expected NEL to count as a word character, got %+v", got)
	}
	got = Compute("a\u00a0b\u3000c\u2028d")
	if got.WordCount != 4 {
		t.Fatalf("expected 4 words split on unicode spaces, got %d", got.WordCount)
	}
}
