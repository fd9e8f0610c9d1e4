package matchers

import "bytes"

// Filter only consults submatcher when line contains one of filters.
func Filter(submatcher Matcher, filters ...string) Matcher {
	fs := make([][]byte, len(filters))

	for i := range filters {
		fs[i] = []byte(filters[i])
	}

	return &filter{
		matcher: submatcher,
		filters: fs,
	}
}

type filter struct {
	matcher Matcher
	filters [][]byte
}

func (f *filter) passes(line []byte) bool {
	for i := range f.filters {
		if bytes.Contains(line, f.filters[i]) {
			return true
		}
	}

	return false
}

func (f *filter) Match(line []byte) (bool, int, int) {
	if !f.passes(line) {
		return false, 0, 0
	}

	return f.matcher.Match(line)
}

func (f *filter) Spans(line []byte) []Span {
	if !f.passes(line) {
		return nil
	}

	return f.matcher.Spans(line)
}
