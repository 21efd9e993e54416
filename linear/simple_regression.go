package linear

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/YuminosukeSato/simplereg/core/model"
	"github.com/YuminosukeSato/simplereg/metrics"
	"github.com/YuminosukeSato/simplereg/pkg/errors"
	"github.com/YuminosukeSato/simplereg/pkg/log"
)

const (
	modelName = "SimpleLinearRegression"

	// DefaultPrecision は Describe が出力する小数点以下の桁数
	DefaultPrecision = 2
)

// SimpleLinearRegression は説明変数1つの線形回帰モデル y = intercept + slope·x
//
// 最小二乗法の閉形式解（正規方程式）で学習する。学習データは保持せず、
// 傾き・切片とサンプル数だけを持つ。インスタンスは並行利用を想定していない。
type SimpleLinearRegression struct {
	model.BaseEstimator

	slope     float64
	intercept float64
	nSamples  int

	precision int
	logger    log.Logger
}

var _ model.Regressor = (*SimpleLinearRegression)(nil)

// NewSimpleLinearRegression は新しい単回帰モデルを作成する
func NewSimpleLinearRegression(opts ...Option) *SimpleLinearRegression {
	lr := &SimpleLinearRegression{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(lr)
	}
	return lr
}

// Fit はモデルを訓練データで学習させる
// x と y は同じ長さでなければならない。失敗した場合、以前の学習結果は変更されない。
func (lr *SimpleLinearRegression) Fit(x, y []float64) error {
	const op = "SimpleLinearRegression.Fit"
	start := time.Now()

	slope, intercept, err := fitLine(op, x, y)
	if err != nil {
		lr.lg().Warn("fit rejected",
			log.OperationKey, log.OperationFit,
			log.SamplesKey, len(x),
			log.ErrorCodeKey, errorCode(err),
			log.ErrAttrKey, err,
		)
		return err
	}

	lr.slope = slope
	lr.intercept = intercept
	lr.nSamples = len(x)
	lr.SetFitted()

	lr.lg().Debug("model fitted",
		log.OperationKey, log.OperationFit,
		log.SamplesKey, lr.nSamples,
		log.SlopeKey, slope,
		log.InterceptKey, intercept,
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// fitLine は入力を検証し、傾きと切片を計算する
func fitLine(op string, x, y []float64) (slope, intercept float64, err error) {
	if len(x) != len(y) {
		return 0, 0, errors.NewDimensionError(op, len(x), len(y), 0)
	}
	if len(x) == 0 {
		return 0, 0, errors.NewValueErrorWithCause(op, "empty sample set", errors.ErrEmptyData)
	}
	if err := errors.CheckFinite(op, "x", x); err != nil {
		return 0, 0, err
	}
	if err := errors.CheckFinite(op, "y", y); err != nil {
		return 0, 0, err
	}

	s, constantX := accumulate(x, y)
	if constantX {
		// 丸め誤差で分母がわずかに非ゼロになっても退化として扱う
		return 0, 0, errors.NewDegenerateInputError(op, len(x), 0)
	}
	slope, intercept, ok := s.solve()
	if !ok {
		return 0, 0, errors.NewDegenerateInputError(op, len(x), s.denominator())
	}
	return slope, intercept, nil
}

// PredictOne は1つの入力値に対する予測 intercept + slope·x を返す
func (lr *SimpleLinearRegression) PredictOne(x float64) (float64, error) {
	if !lr.IsFitted() {
		return 0, lr.notFitted("PredictOne")
	}
	return lr.eval(x), nil
}

// PredictMany は入力系列の各値に対する予測を同じ順序で返す
// 空の入力には空のスライスを返す
func (lr *SimpleLinearRegression) PredictMany(xs []float64) ([]float64, error) {
	if !lr.IsFitted() {
		return nil, lr.notFitted("PredictMany")
	}

	predictions := make([]float64, len(xs))
	for i, x := range xs {
		predictions[i] = lr.eval(x)
	}

	lr.lg().Debug("predicted batch",
		log.OperationKey, log.OperationPredict,
		log.PredsKey, len(predictions),
	)
	return predictions, nil
}

func (lr *SimpleLinearRegression) eval(x float64) float64 {
	return lr.intercept + lr.slope*x
}

// Describe は学習済みの直線を "y = 65.14 + 0.39 * x" の形式で返す
// 桁数は WithPrecision で変更できる（既定値は2）
func (lr *SimpleLinearRegression) Describe() (string, error) {
	if !lr.IsFitted() {
		return "", lr.notFitted("Describe")
	}
	return lr.equation(), nil
}

func (lr *SimpleLinearRegression) equation() string {
	return fmt.Sprintf("y = %s + %s * x", formatCoef(lr.intercept, lr.precision), formatCoef(lr.slope, lr.precision))
}

// formatCoef は桁数 p で丸めた値を返す
// 丸めて0になる負の値は "-0.00" ではなく "0.00" とする
func formatCoef(v float64, p int) string {
	s := strconv.FormatFloat(v, 'f', p, 64)
	if strings.HasPrefix(s, "-") && strings.Trim(s[1:], "0.") == "" {
		return s[1:]
	}
	return s
}

// String implements fmt.Stringer.
func (lr *SimpleLinearRegression) String() string {
	if !lr.IsFitted() {
		return modelName + "(unfitted)"
	}
	return lr.equation()
}

// Score はモデルの決定係数（R²）を計算する
func (lr *SimpleLinearRegression) Score(x, y []float64) (float64, error) {
	if !lr.IsFitted() {
		return 0, lr.notFitted("Score")
	}
	if len(x) != len(y) {
		return 0, errors.NewDimensionError("SimpleLinearRegression.Score", len(x), len(y), 0)
	}

	yPred, err := lr.PredictMany(x)
	if err != nil {
		return 0, err
	}
	score, err := metrics.R2Score(y, yPred)
	if err != nil {
		return 0, err
	}

	lr.lg().Debug("scored",
		log.OperationKey, log.OperationScore,
		log.SamplesKey, len(x),
		log.R2ScoreKey, score,
	)
	return score, nil
}

// Reset はモデルを未学習状態（slope = intercept = 0）に戻す
func (lr *SimpleLinearRegression) Reset() {
	lr.slope = 0
	lr.intercept = 0
	lr.nSamples = 0
	lr.BaseEstimator.Reset()
}

// Slope は学習された傾きを返す（未学習なら0）
func (lr *SimpleLinearRegression) Slope() float64 {
	return lr.slope
}

// Intercept は学習された切片を返す（未学習なら0）
func (lr *SimpleLinearRegression) Intercept() float64 {
	return lr.intercept
}

// NSamples は直近の学習に使ったサンプル数を返す
func (lr *SimpleLinearRegression) NSamples() int {
	return lr.nSamples
}

// Precision は Describe の小数点以下の桁数を返す
func (lr *SimpleLinearRegression) Precision() int {
	return lr.precision
}

func (lr *SimpleLinearRegression) notFitted(method string) error {
	err := errors.NewNotFittedError(modelName, method)
	lr.lg().Debug("model used before fitting",
		log.ErrorCodeKey, log.ErrorNotFitted,
		"method", method,
	)
	return err
}

func (lr *SimpleLinearRegression) lg() log.Logger {
	if lr.logger == nil {
		lr.logger = log.GetLoggerWithName("linear").With(log.ModelNameKey, modelName)
	}
	return lr.logger
}

// errorCode はエラーを log の標準エラーコードに変換する
func errorCode(err error) string {
	var (
		degErr *errors.DegenerateInputError
		dimErr *errors.DimensionError
		notFit *errors.NotFittedError
	)
	switch {
	case errors.As(err, &degErr):
		return log.ErrorDegenerateInput
	case errors.As(err, &dimErr):
		return log.ErrorDimensionMismatch
	case errors.As(err, &notFit):
		return log.ErrorNotFitted
	case errors.Is(err, errors.ErrEmptyData):
		return log.ErrorEmptyData
	default:
		return log.ErrorInvalidInput
	}
}
