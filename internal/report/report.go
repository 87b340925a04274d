// Package report renders text statistics for terminal and machine output.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/verte-zerg/tuicount/internal/textstats"
)

// Output formats accepted by Render.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

const totalLabel = "total"

// Row pairs an input name with its stats.
type Row struct {
	Name  string
	Stats textstats.Stats
}

// Metric is a labelled, display-ready value.
type Metric struct {
	Label string
	Value string
}

// Summary returns the primary card metrics in display order.
func Summary(s textstats.Stats) []Metric {
	return []Metric{
		{Label: "Words", Value: strconv.Itoa(s.WordCount)},
		{Label: "Characters", Value: strconv.Itoa(s.CharacterCount)},
		{Label: "Sentences", Value: strconv.Itoa(s.SentenceCount)},
		{Label: "Reading Time", Value: fmt.Sprintf("%d min", s.ReadingTimeMinutes)},
	}
}

// Insights returns the secondary metrics in display order.
func Insights(s textstats.Stats) []Metric {
	return []Metric{
		{Label: "Paragraphs", Value: strconv.Itoa(s.ParagraphCount)},
		{Label: "Avg. Word Length", Value: FormatAvg(s.AvgWordLength) + " chars"},
		{Label: "No-space chars", Value: strconv.Itoa(s.CharacterCountNoSpaces)},
	}
}

// FormatAvg formats an average word length with two decimals.
func FormatAvg(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// Render writes rows in the requested format.
func Render(w io.Writer, format string, rows []Row, total bool) error {
	switch format {
	case FormatTable:
		return RenderTable(w, rows, total)
	case FormatJSON:
		return RenderJSON(w, rows, total)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// RenderTable prints an aligned table with one line per row. When total is
// set and there is more than one row, a combined row is appended.
func RenderTable(w io.Writer, rows []Row, total bool) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No input.")
		return err
	}
	headers := []string{"File", "Words", "Chars", "No-space", "Sentences", "Paragraphs", "Read (min)", "Avg len"}
	tableRows := make([][]string, 0, len(rows)+1)
	for _, r := range withTotal(rows, total) {
		tableRows = append(tableRows, []string{
			r.Name,
			strconv.Itoa(r.Stats.WordCount),
			strconv.Itoa(r.Stats.CharacterCount),
			strconv.Itoa(r.Stats.CharacterCountNoSpaces),
			strconv.Itoa(r.Stats.SentenceCount),
			strconv.Itoa(r.Stats.ParagraphCount),
			strconv.Itoa(r.Stats.ReadingTimeMinutes),
			FormatAvg(r.Stats.AvgWordLength),
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

type jsonStats struct {
	Name                   string      `json:"name"`
	WordCount              int         `json:"wordCount"`
	CharacterCount         int         `json:"characterCount"`
	CharacterCountNoSpaces int         `json:"characterCountNoSpaces"`
	SentenceCount          int         `json:"sentenceCount"`
	ParagraphCount         int         `json:"paragraphCount"`
	ReadingTimeMinutes     int         `json:"readingTimeMinutes"`
	AvgWordLength          json.Number `json:"avgWordLength"`
}

type jsonReport struct {
	Inputs []jsonStats `json:"inputs"`
	Total  *jsonStats  `json:"total,omitempty"`
}

// RenderJSON writes rows as an indented JSON document.
func RenderJSON(w io.Writer, rows []Row, total bool) error {
	doc := jsonReport{Inputs: make([]jsonStats, 0, len(rows))}
	for _, r := range rows {
		doc.Inputs = append(doc.Inputs, toJSON(r))
	}
	if total && len(rows) > 1 {
		t := toJSON(combined(rows))
		doc.Total = &t
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

func toJSON(r Row) jsonStats {
	return jsonStats{
		Name:                   r.Name,
		WordCount:              r.Stats.WordCount,
		CharacterCount:         r.Stats.CharacterCount,
		CharacterCountNoSpaces: r.Stats.CharacterCountNoSpaces,
		SentenceCount:          r.Stats.SentenceCount,
		ParagraphCount:         r.Stats.ParagraphCount,
		ReadingTimeMinutes:     r.Stats.ReadingTimeMinutes,
		AvgWordLength:          json.Number(FormatAvg(r.Stats.AvgWordLength)),
	}
}

func withTotal(rows []Row, total bool) []Row {
	if !total || len(rows) < 2 {
		return rows
	}
	out := make([]Row, 0, len(rows)+1)
	out = append(out, rows...)
	return append(out, combined(rows))
}

func combined(rows []Row) Row {
	parts := make([]textstats.Stats, len(rows))
	for i, r := range rows {
		parts[i] = r.Stats
	}
	return Row{Name: totalLabel, Stats: textstats.Combine(parts...)}
}
