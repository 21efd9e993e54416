package viz

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/simplereg/linear"
	"github.com/YuminosukeSato/simplereg/pkg/errors"
)

var (
	sampleX = []float64{43, 21, 25, 42, 57, 59}
	sampleY = []float64{99, 65, 79, 75, 87, 81}
)

func fitted(t *testing.T) *linear.SimpleLinearRegression {
	t.Helper()
	lr := linear.NewSimpleLinearRegression()
	require.NoError(t, lr.Fit(sampleX, sampleY))
	return lr
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, fitted(t), sampleX, sampleY))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")), "output should be a PNG image")
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fit.png")
	require.NoError(t, SavePNG(path, fitted(t), sampleX, sampleY))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteHTML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteHTML(&buf, fitted(t), sampleX, sampleY))

	html := buf.String()
	assert.Contains(t, html, "y = 65.14 + 0.39 * x")
	assert.Contains(t, html, "Residuals")
	assert.Contains(t, html, "samples")
}

func TestSaveHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fit.html")
	require.NoError(t, SaveHTML(path, fitted(t), sampleX, sampleY))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<html")
}

func TestInvalidInput(t *testing.T) {
	lr := fitted(t)

	t.Run("unfitted model", func(t *testing.T) {
		var buf bytes.Buffer
		err := WritePNG(&buf, linear.NewSimpleLinearRegression(), sampleX, sampleY)
		var notFitted *errors.NotFittedError
		assert.True(t, errors.As(err, &notFitted))
		assert.Zero(t, buf.Len())
	})

	t.Run("length mismatch", func(t *testing.T) {
		err := WriteHTML(&bytes.Buffer{}, lr, sampleX, sampleY[:2])
		var dimErr *errors.DimensionError
		assert.True(t, errors.As(err, &dimErr))
	})

	t.Run("empty samples", func(t *testing.T) {
		_, err := ScatterFit(lr, nil, nil)
		assert.True(t, errors.Is(err, errors.ErrEmptyData))
	})
}

func TestResiduals(t *testing.T) {
	bar, err := Residuals(fitted(t), sampleX, sampleY)
	require.NoError(t, err)
	assert.NotNil(t, bar)

	_, err = Residuals(fitted(t), sampleX, sampleY[:3])
	assert.Error(t, err)
}
