package linear

import "github.com/YuminosukeSato/simplereg/pkg/log"

// Option is a function that configures SimpleLinearRegression
type Option func(*SimpleLinearRegression)

// WithPrecision sets the number of decimal places used by Describe.
// Negative values are ignored and the default of 2 is kept.
func WithPrecision(precision int) Option {
	return func(lr *SimpleLinearRegression) {
		if precision >= 0 {
			lr.precision = precision
		}
	}
}

// WithLogger sets the logger used for fit and predict events.
// Defaults to the package-wide provider's "linear" logger.
func WithLogger(logger log.Logger) Option {
	return func(lr *SimpleLinearRegression) {
		if logger != nil {
			lr.logger = logger.With(log.ModelNameKey, modelName)
		}
	}
}
