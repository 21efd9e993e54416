package linear

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/YuminosukeSato/simplereg/core/model"
	"github.com/YuminosukeSato/simplereg/pkg/errors"
	"github.com/YuminosukeSato/simplereg/pkg/log"
)

var _ model.WeightExporter = (*SimpleLinearRegression)(nil)

// ExportWeights はモデルの重みを ModelWeights として返す
// Coefficients には傾きが1つだけ入る
func (lr *SimpleLinearRegression) ExportWeights() (*model.ModelWeights, error) {
	if !lr.IsFitted() {
		return nil, lr.notFitted("ExportWeights")
	}

	lr.lg().Debug("exporting weights", log.OperationKey, log.OperationExport)
	return &model.ModelWeights{
		ModelType:    modelName,
		Version:      model.WeightsFormatVersion,
		Coefficients: []float64{lr.slope},
		Intercept:    lr.intercept,
		Hyperparameters: map[string]interface{}{
			"precision": lr.precision,
		},
		Metadata: map[string]interface{}{
			"n_samples": lr.nSamples,
		},
		IsFitted: true,
	}, nil
}

// ImportWeights は ModelWeights からモデルの状態を復元する
// 未学習の重みを読み込んだ場合はモデルをリセットする
func (lr *SimpleLinearRegression) ImportWeights(weights *model.ModelWeights) error {
	const op = "SimpleLinearRegression.ImportWeights"

	if weights == nil {
		return errors.NewValueError(op, "weights are nil")
	}
	if err := weights.Validate(); err != nil {
		return errors.NewModelError(op, "invalid weights", err)
	}
	if weights.ModelType != modelName {
		return errors.NewModelError(op, "model type mismatch",
			errors.Newf("expected %s, got %s", modelName, weights.ModelType))
	}
	if !weights.IsFitted {
		lr.Reset()
		return nil
	}
	if len(weights.Coefficients) != 1 {
		return errors.NewDimensionError(op, 1, len(weights.Coefficients), 1)
	}

	precision := -1
	if p, ok := weights.Hyperparameters["precision"]; ok {
		precision = intValue(p)
	}
	state := fittedState{
		slope:     weights.Coefficients[0],
		intercept: weights.Intercept,
		nSamples:  intValue(weights.Metadata["n_samples"]),
		precision: precision,
	}
	if err := state.validate(op); err != nil {
		return err
	}
	lr.restore(state)

	lr.lg().Debug("imported weights",
		log.OperationKey, log.OperationLoad,
		log.SlopeKey, lr.slope,
		log.InterceptKey, lr.intercept,
	)
	return nil
}

// fittedState は外部から読み込んだ学習結果
// precision が負の場合は現在の桁数を維持する
type fittedState struct {
	slope     float64
	intercept float64
	nSamples  int
	precision int
}

// validate は読み込んだ値がモデルに設定可能か検証する
func (s fittedState) validate(op string) error {
	if err := errors.CheckScalar(op, "slope", s.slope); err != nil {
		return err
	}
	if err := errors.CheckScalar(op, "intercept", s.intercept); err != nil {
		return err
	}
	if s.nSamples < 0 {
		return errors.NewValueError(op, fmt.Sprintf("n_samples must be non-negative, got %d", s.nSamples))
	}
	return nil
}

// restore は検証済みの状態をモデルに設定する
func (lr *SimpleLinearRegression) restore(s fittedState) {
	lr.slope = s.slope
	lr.intercept = s.intercept
	lr.nSamples = s.nSamples
	if s.precision >= 0 {
		lr.precision = s.precision
	}
	lr.SetFitted()
}

// JSON から戻した数値は float64 になる
func intValue(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}

// gobState は gob でエンコードされるモデルの状態
type gobState struct {
	Slope     float64
	Intercept float64
	NSamples  int
	Precision int
	Fitted    bool
}

// GobEncode implements gob.GobEncoder so model.SaveModel can persist the estimator.
func (lr *SimpleLinearRegression) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(gobState{
		Slope:     lr.slope,
		Intercept: lr.intercept,
		NSamples:  lr.nSamples,
		Precision: lr.precision,
		Fitted:    lr.IsFitted(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode SimpleLinearRegression")
	}
	return buf.Bytes(), nil
}

// GobDecode implements gob.GobDecoder.
func (lr *SimpleLinearRegression) GobDecode(data []byte) error {
	const op = "SimpleLinearRegression.GobDecode"

	var state gobState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&state); err != nil {
		return errors.Wrap(err, "failed to decode SimpleLinearRegression")
	}

	if !state.Fitted {
		lr.Reset()
		if state.Precision >= 0 {
			lr.precision = state.Precision
		}
		return nil
	}

	fitted := fittedState{
		slope:     state.Slope,
		intercept: state.Intercept,
		nSamples:  state.NSamples,
		precision: state.Precision,
	}
	if err := fitted.validate(op); err != nil {
		return err
	}
	lr.restore(fitted)
	return nil
}
