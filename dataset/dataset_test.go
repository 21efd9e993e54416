package dataset

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/simplereg/pkg/errors"
)

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantX   []float64
		wantY   []float64
		wantErr bool
	}{
		{
			name:  "with header",
			input: "x,y\n43,99\n21,65\n",
			wantX: []float64{43, 21},
			wantY: []float64{99, 65},
		},
		{
			name:  "without header and with comments",
			input: "# canonical sample\n1.5, 2\n-3,4e1\n",
			wantX: []float64{1.5, -3},
			wantY: []float64{2, 40},
		},
		{
			name:    "bad row after header",
			input:   "x,y\n1,2\n3,abc\n",
			wantErr: true,
		},
		{
			name:    "wrong field count",
			input:   "1,2,3\n",
			wantErr: true,
		},
		{
			name:    "header only",
			input:   "x,y\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadCSV(strings.NewReader(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				var valErr *errors.ValueError
				assert.True(t, errors.As(err, &valErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantX, got.X)
			assert.Equal(t, tt.wantY, got.Y)
			assert.Equal(t, len(tt.wantX), got.Len())
		})
	}
}

func TestReadCSVErrorNamesLine(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("x,y\n1,2\n3,abc\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")

	_, err = ReadCSV(strings.NewReader(""))
	assert.True(t, errors.Is(err, errors.ErrEmptyData))
}

func TestReadContest(t *testing.T) {
	input := `1 6
43 99
21 65
25 79
42 75
57 87
59 81
2
26
60
`
	got, err := ReadContest(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []float64{43, 21, 25, 42, 57, 59}, got.X)
	assert.Equal(t, []float64{99, 65, 79, 75, 87, 81}, got.Y)
	assert.Equal(t, []float64{26, 60}, got.Queries)
}

func TestReadContestErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name:  "multi-feature rejected",
			input: "2 1\n1 2 3\n0\n",
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "single-feature")
			},
		},
		{
			name:  "truncated rows",
			input: "1 3\n1 2\n3\n",
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
			},
		},
		{
			name:  "missing queries",
			input: "1 2\n1 2\n3 4\n2\n5\n",
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "query 2")
			},
		},
		{
			name:  "bad number",
			input: "1 1\nx 2\n0\n",
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "x of row 1")
			},
		},
		{
			name:  "huge row count with short body",
			input: "1 9223372036854775807\n1 2\n",
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
				assert.Contains(t, err.Error(), "x of row 2")
			},
		},
		{
			name:  "huge query count after valid rows",
			input: "1 2\n1 2\n3 4\n9223372036854775807\n",
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
				assert.Contains(t, err.Error(), "query 1")
			},
		},
		{
			name:  "no rows",
			input: "1 0\n0\n",
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, errors.ErrEmptyData))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadContest(strings.NewReader(tt.input))
			require.Error(t, err)
			var valErr *errors.ValueError
			assert.True(t, errors.As(err, &valErr))
			tt.check(t, err)
		})
	}
}

func TestWritePredictions(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WritePredictions(&buf, []float64{75.157421, 88.255, -1}))
	assert.Equal(t, "75.16\n88.25\n-1.00\n", buf.String())
}
