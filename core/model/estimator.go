package model

import "gonum.org/v1/gonum/mat"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit は説明変数 x と目的変数 y でモデルを学習させる
	Fit(x, y []float64) error
}

// Predictor は予測可能なモデルのインターフェース
// スカラーと系列で別々のメソッドを持つ
type Predictor interface {
	// PredictOne は1つの入力値に対する予測を行う
	PredictOne(x float64) (float64, error)
	// PredictMany は入力系列の各値に対する予測を、同じ順序・同じ長さで返す
	PredictMany(xs []float64) ([]float64, error)
}

// Describer は学習済みモデルを人間が読める形で表現する
type Describer interface {
	Describe() (string, error)
}

// Scorer は決定係数（R²）を計算できるモデルのインターフェース
type Scorer interface {
	Score(x, y []float64) (float64, error)
}

// MatrixFitter は gonum の行列（n×1）を受け付けるモデルのインターフェース
type MatrixFitter interface {
	FitMatrix(X, y mat.Matrix) error
	PredictMatrix(X mat.Matrix) (mat.Matrix, error)
}
