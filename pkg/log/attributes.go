// Attribute keys shared by every log record emitted by simplereg.
// Keys follow a dotted naming convention ("model.name", "data.samples")
// so records can be filtered by category.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "SimpleLinearRegression".
	ModelNameKey = "model.name"

	// OperationKey is one of the Operation* values below.
	OperationKey = "ml.operation"

	// ComponentKey identifies the package emitting the record, e.g. "linear", "dataset".
	ComponentKey = "ml.component"
)

// Data shape.
const (
	SamplesKey  = "data.samples"
	FeaturesKey = "data.features"
	SourceKey   = "data.source"
)

// Fitted parameters and metrics.
const (
	SlopeKey      = "model.slope"
	InterceptKey  = "model.intercept"
	R2ScoreKey    = "metrics.r2_score"
	DurationMsKey = "perf.duration_ms"
	PredsKey      = "preds.count"
)

// Error context.
const (
	ErrorCodeKey  = "error.code"
	SuggestionKey = "error.suggestion"
)

// Standard attribute values.
const (
	OperationFit      = "fit"
	OperationPredict  = "predict"
	OperationDescribe = "describe"
	OperationScore    = "score"
	OperationLoad     = "load"
	OperationExport   = "export"

	ErrorNotFitted         = "NOT_FITTED"
	ErrorDimensionMismatch = "DIMENSION_MISMATCH"
	ErrorEmptyData         = "EMPTY_DATA"
	ErrorInvalidInput      = "INVALID_INPUT"
	ErrorDegenerateInput   = "DEGENERATE_INPUT"
)
