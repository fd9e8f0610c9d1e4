package matchers

//go:generate counterfeiter . Matcher

type Matcher interface {
	// Match reports the first match in line.
	Match(line []byte) (bool, int, int)
	// Spans reports every non-overlapping match in line, in order.
	Spans(line []byte) []Span
}

type Span struct {
	Start int
	End   int
}
