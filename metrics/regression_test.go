package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/simplereg/pkg/errors"
)

func TestMSE(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "perfect prediction",
			yTrue: []float64{1.0, 2.0, 3.0, 4.0, 5.0},
			yPred: []float64{1.0, 2.0, 3.0, 4.0, 5.0},
			want:  0.0,
		},
		{
			name:  "simple case",
			yTrue: []float64{1.0, 2.0, 3.0, 4.0},
			yPred: []float64{1.5, 2.5, 2.5, 3.5},
			want:  0.25, // (0.25 * 4) / 4
		},
		{
			name:  "larger errors",
			yTrue: []float64{10.0, 20.0, 30.0},
			yPred: []float64{12.0, 18.0, 33.0},
			want:  17.0 / 3.0, // (4 + 4 + 9) / 3
		},
		{
			name:    "dimension mismatch",
			yTrue:   []float64{1.0, 2.0, 3.0},
			yPred:   []float64{1.0, 2.0},
			wantErr: true,
		},
		{
			name:    "empty vectors",
			yTrue:   []float64{},
			yPred:   []float64{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MSE(tt.yTrue, tt.yPred)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-10)
		})
	}
}

func TestRMSEAndMAE(t *testing.T) {
	yTrue := []float64{0.0, 0.0, 0.0, 0.0}
	yPred := []float64{1.0, -1.0, 1.0, -1.0}

	rmse, err := RMSE(yTrue, yPred)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, rmse, 1e-10)

	mae, err := MAE(yTrue, []float64{1.0, -2.0, 3.0, -4.0})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, mae, 1e-10)

	_, err = RMSE(yTrue, yPred[:2])
	var dimErr *errors.DimensionError
	assert.True(t, errors.As(err, &dimErr))

	_, err = MAE(nil, nil)
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

func TestSumSquaredResiduals(t *testing.T) {
	got, err := SumSquaredResiduals([]float64{10, 20, 30}, []float64{12, 18, 33})
	require.NoError(t, err)
	assert.InDelta(t, 17.0, got, 1e-10)
}

func TestR2Score(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []float64
		yPred   []float64
		want    float64
		wantErr bool
	}{
		{
			name:  "perfect prediction",
			yTrue: []float64{1, 2, 3, 4},
			yPred: []float64{1, 2, 3, 4},
			want:  1.0,
		},
		{
			name:  "mean prediction",
			yTrue: []float64{1, 2, 3, 4},
			yPred: []float64{2.5, 2.5, 2.5, 2.5},
			want:  0.0,
		},
		{
			name:  "partial fit",
			yTrue: []float64{3, -0.5, 2, 7},
			yPred: []float64{2.5, 0.0, 2, 8},
			// sklearn の r2_score と同じ値
			want: 0.9486081370449679,
		},
		{
			name:    "no variance",
			yTrue:   []float64{5, 5, 5},
			yPred:   []float64{5, 5, 5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := R2Score(tt.yTrue, tt.yPred)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-10)
			assert.False(t, math.IsNaN(got))
		})
	}
}
