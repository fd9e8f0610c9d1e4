package matchers

import "bytes"

type substringMatcher struct {
	s []byte
}

func Substring(s string) Matcher {
	return &substringMatcher{
		s: []byte(s),
	}
}

func (m *substringMatcher) Match(line []byte) (bool, int, int) {
	start := bytes.Index(line, m.s)
	if start == -1 {
		return false, 0, 0
	}

	return true, start, start + len(m.s)
}

func (m *substringMatcher) Spans(line []byte) []Span {
	if len(m.s) == 0 {
		return nil
	}

	var spans []Span
	offset := 0
	for {
		i := bytes.Index(line[offset:], m.s)
		if i == -1 {
			return spans
		}
		start := offset + i
		spans = append(spans, Span{Start: start, End: start + len(m.s)})
		offset = start + len(m.s)
	}
}
