package svg

import "math"

// ParserOptions tune how path data is turned into segments.
type ParserOptions struct {
	// SlopeTolerance is the largest slope difference at which consecutive
	// straight segments heading the same way are merged. Zero disables merging.
	SlopeTolerance float64
	// GenerateIDs gives every path without an id attribute a random one.
	GenerateIDs bool
}

func DefaultParserOptions() ParserOptions {
	return ParserOptions{}
}

func (o ParserOptions) Validate() error {
	if math.IsNaN(o.SlopeTolerance) || o.SlopeTolerance < 0 {
		return newInvalidOptionError("slope tolerance", o.SlopeTolerance)
	}

	return nil
}
