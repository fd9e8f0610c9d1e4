package matchers

import "sort"

func Multi(matchers ...Matcher) Matcher {
	return &multi{
		matchers: matchers,
	}
}

// UpcasedMulti matches against an ASCII upper-cased copy of the line. Byte
// offsets are preserved so spans still index into the original line.
func UpcasedMulti(matchers ...Matcher) Matcher {
	return &multi{
		matchers: matchers,
		upcase:   true,
	}
}

type multi struct {
	matchers []Matcher
	upcase   bool
}

func (m *multi) prepare(line []byte) []byte {
	if !m.upcase {
		return line
	}
	return asciiUpper(line)
}

func (m *multi) Match(line []byte) (bool, int, int) {
	line = m.prepare(line)
	for _, matcher := range m.matchers {
		if match, start, end := matcher.Match(line); match {
			return true, start, end
		}
	}

	return false, 0, 0
}

func (m *multi) Spans(line []byte) []Span {
	line = m.prepare(line)

	var all []Span
	for _, matcher := range m.matchers {
		all = append(all, matcher.Spans(line)...)
	}

	return mergeSpans(all)
}

func mergeSpans(spans []Span) []Span {
	if len(spans) < 2 {
		return spans
	}

	sort.Slice(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})

	merged := []Span{spans[0]}
	for _, s := range spans[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}

	return merged
}

func asciiUpper(line []byte) []byte {
	out := make([]byte, len(line))
	for i, b := range line {
		if 'a' <= b && b <= 'z' {
			b -= 'a' - 'A'
		}
		out[i] = b
	}
	return out
}
