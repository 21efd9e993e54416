package model

// Estimator は学習状態を持つモデルの最小インターフェース
type Estimator interface {
	Fitter
	IsFitted() bool
	Reset()
}

// Regressor combines the interfaces implemented by regression models.
type Regressor interface {
	Estimator
	Predictor
	Describer
	Scorer
}

// WeightExporter は重みをエクスポート可能なモデルのインターフェース
type WeightExporter interface {
	// ExportWeights はモデルの重みをエクスポート
	ExportWeights() (*ModelWeights, error)

	// ImportWeights はモデルの重みをインポート
	ImportWeights(weights *ModelWeights) error
}
