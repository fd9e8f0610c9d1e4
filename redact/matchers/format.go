package matchers

import "regexp"

type formatMatcher struct {
	r *regexp.Regexp
}

func Format(format string) Matcher {
	return &formatMatcher{
		r: regexp.MustCompile(format),
	}
}

func (m *formatMatcher) Match(line []byte) (bool, int, int) {
	index := m.r.FindIndex(line)
	if index == nil {
		return false, 0, 0
	}

	return true, index[0], index[1]
}

func (m *formatMatcher) Spans(line []byte) []Span {
	var spans []Span
	for _, index := range m.r.FindAllIndex(line, -1) {
		spans = append(spans, Span{Start: index[0], End: index[1]})
	}
	return spans
}
