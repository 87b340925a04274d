package textstats

// Memo caches the Stats of the most recently computed text.
// It is not safe for concurrent use.
type Memo struct {
	text  string
	stats Stats
	valid bool
	hits  int
}

// Compute returns the cached Stats when text matches the last input and
// recomputes otherwise.
func (m *Memo) Compute(text string) Stats {
	if m.valid && m.text == text {
		m.hits++
		return m.stats
	}
	m.text = text
	m.stats = Compute(text)
	m.valid = true
	return m.stats
}
