package pratt

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parseopts) parseopts
}

// parseopts holds the options for one parse.
type parseopts struct {
	// partial indicates that input may remain after the expression.
	partial bool
}

type partialopt struct{}

func (partialopt) parseOption(o parseopts) parseopts {
	o.partial = true
	return o
}

// Partial tells the parser to stop at the first token that cannot continue
// the expression instead of requiring the whole input to be one expression.
func Partial() ParseOption {
	return partialopt{}
}
