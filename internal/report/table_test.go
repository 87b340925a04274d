package report

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"File", "Words", "Avg len"}
	rows := [][]string{
		{"a.txt", "12", "4.50"},
		{"notes.md", "3", "10.00"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "File      Words  Avg len" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "a.txt        12     4.50" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "notes.md      3    10.00" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"File", "Words"}, [][]string{{"日本.txt", "1"}}, map[int]bool{1: true})
	if lines[0] != "File      Words" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "日本.txt      1" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}
