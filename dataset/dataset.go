// Package dataset reads sample sets for simple linear regression from text.
//
// Two formats are supported: CSV with an x column and a y column, and the
// whitespace-separated contest format
//
//	F N
//	x_1 y_1
//	...
//	x_N y_N
//	T
//	q_1
//	...
//	q_T
//
// restricted to F == 1.
package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/YuminosukeSato/simplereg/pkg/errors"
	"github.com/YuminosukeSato/simplereg/pkg/log"
)

// Samples is a sample set read from a source.
type Samples struct {
	X []float64
	Y []float64
}

// Len returns the number of (x, y) pairs.
func (s *Samples) Len() int {
	return len(s.X)
}

// ContestInput is a parsed contest file: training samples plus query points.
type ContestInput struct {
	Samples
	Queries []float64
}

// maxPrealloc bounds the capacity reserved from counts declared in a header.
const maxPrealloc = 1 << 16

// ReadCSV reads records of two numeric fields (x, y). A first record that
// does not parse as numbers is treated as a header and skipped. Lines
// starting with '#' are comments.
func ReadCSV(r io.Reader) (*Samples, error) {
	const op = "dataset.ReadCSV"

	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = 2

	samples := &Samples{}
	for record := 0; ; record++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewValueErrorWithCause(op, "malformed csv", err)
		}
		line, _ := reader.FieldPos(0)

		x, errX := parseFloat(fields[0])
		y, errY := parseFloat(fields[1])
		if errX != nil || errY != nil {
			if record == 0 {
				continue
			}
			return nil, errors.NewValueError(op, fmt.Sprintf("line %d: expected two numbers, got %q", line, strings.Join(fields, ",")))
		}
		samples.X = append(samples.X, x)
		samples.Y = append(samples.Y, y)
	}

	if samples.Len() == 0 {
		return nil, errors.NewValueErrorWithCause(op, "no samples", errors.ErrEmptyData)
	}

	log.GetLoggerWithName("dataset").Debug("read samples",
		log.OperationKey, log.OperationLoad,
		log.SourceKey, "csv",
		log.SamplesKey, samples.Len(),
	)
	return samples, nil
}

// ReadContest reads the contest format. Only one feature per row is
// supported; F != 1 is rejected.
func ReadContest(r io.Reader) (*ContestInput, error) {
	const op = "dataset.ReadContest"

	tokens := newTokenReader(r)

	features, err := tokens.nextInt("feature count")
	if err != nil {
		return nil, errors.NewValueErrorWithCause(op, err.Error(), err)
	}
	if features != 1 {
		return nil, errors.NewValueError(op, fmt.Sprintf("only single-feature data is supported, got %d features", features))
	}

	n, err := tokens.nextInt("row count")
	if err != nil {
		return nil, errors.NewValueErrorWithCause(op, err.Error(), err)
	}
	if n <= 0 {
		return nil, errors.NewValueErrorWithCause(op, "no samples", errors.ErrEmptyData)
	}

	// 件数はヘッダーの値を信用せず、読めた分だけ伸ばす
	input := &ContestInput{
		Samples: Samples{
			X: make([]float64, 0, min(n, maxPrealloc)),
			Y: make([]float64, 0, min(n, maxPrealloc)),
		},
	}
	for i := 0; i < n; i++ {
		x, err := tokens.nextFloat(fmt.Sprintf("x of row %d", i+1))
		if err != nil {
			return nil, errors.NewValueErrorWithCause(op, err.Error(), err)
		}
		y, err := tokens.nextFloat(fmt.Sprintf("y of row %d", i+1))
		if err != nil {
			return nil, errors.NewValueErrorWithCause(op, err.Error(), err)
		}
		input.X = append(input.X, x)
		input.Y = append(input.Y, y)
	}

	t, err := tokens.nextInt("query count")
	if err != nil {
		return nil, errors.NewValueErrorWithCause(op, err.Error(), err)
	}
	if t < 0 {
		return nil, errors.NewValueError(op, fmt.Sprintf("negative query count %d", t))
	}
	input.Queries = make([]float64, 0, min(t, maxPrealloc))
	for i := 0; i < t; i++ {
		q, err := tokens.nextFloat(fmt.Sprintf("query %d", i+1))
		if err != nil {
			return nil, errors.NewValueErrorWithCause(op, err.Error(), err)
		}
		input.Queries = append(input.Queries, q)
	}

	log.GetLoggerWithName("dataset").Debug("read contest input",
		log.OperationKey, log.OperationLoad,
		log.SourceKey, "contest",
		log.SamplesKey, n,
		log.PredsKey, t,
	)
	return input, nil
}

// WritePredictions writes one prediction per line rounded to two decimals.
func WritePredictions(w io.Writer, predictions []float64) error {
	bw := bufio.NewWriter(w)
	for _, p := range predictions {
		if _, err := fmt.Fprintf(bw, "%.2f\n", p); err != nil {
			return errors.Wrap(err, "failed to write predictions")
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "failed to write predictions")
	}
	return nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

type tokenReader struct {
	scanner *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	return &tokenReader{scanner: scanner}
}

func (t *tokenReader) next(what string) (string, error) {
	if !t.scanner.Scan() {
		if err := t.scanner.Err(); err != nil {
			return "", errors.Wrapf(err, "reading %s", what)
		}
		return "", errors.Wrapf(io.ErrUnexpectedEOF, "missing %s", what)
	}
	return t.scanner.Text(), nil
}

func (t *tokenReader) nextInt(what string) (int, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", what)
	}
	return v, nil
}

func (t *tokenReader) nextFloat(what string) (float64, error) {
	tok, err := t.next(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", what)
	}
	return v, nil
}
