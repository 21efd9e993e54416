package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/simplereg/core/model"
	"github.com/YuminosukeSato/simplereg/pkg/errors"
)

var _ model.MatrixFitter = (*SimpleLinearRegression)(nil)

// FitMatrix は n×1 の行列 X と n×1 の列ベクトル y で学習する
func (lr *SimpleLinearRegression) FitMatrix(X, y mat.Matrix) error {
	const op = "SimpleLinearRegression.FitMatrix"

	x, err := singleColumn(op, X)
	if err != nil {
		return err
	}
	yCol, err := singleColumn(op, y)
	if err != nil {
		return err
	}
	return lr.Fit(x, yCol)
}

// PredictMatrix は n×1 の行列 X に対する予測を n×1 の行列で返す
func (lr *SimpleLinearRegression) PredictMatrix(X mat.Matrix) (mat.Matrix, error) {
	x, err := singleColumn("SimpleLinearRegression.PredictMatrix", X)
	if err != nil {
		return nil, err
	}
	predictions, err := lr.PredictMany(x)
	if err != nil {
		return nil, err
	}
	if len(predictions) == 0 {
		return &mat.Dense{}, nil
	}
	return mat.NewDense(len(predictions), 1, predictions), nil
}

// singleColumn は列が1つの行列からその列を取り出す
func singleColumn(op string, m mat.Matrix) ([]float64, error) {
	if m == nil {
		return nil, errors.NewValueErrorWithCause(op, "nil matrix", errors.ErrEmptyData)
	}
	if d, ok := m.(*mat.Dense); ok && d.IsEmpty() {
		return []float64{}, nil
	}
	if v, ok := m.(*mat.VecDense); ok && v.IsEmpty() {
		return []float64{}, nil
	}
	r, c := m.Dims()
	if c != 1 {
		return nil, errors.NewDimensionError(op, 1, c, 1)
	}
	return mat.Col(make([]float64, r), 0, m), nil
}
