// Package simplereg provides simple (one explanatory variable) linear
// regression for Go.
//
// A model is fitted with the closed-form ordinary least squares solution
//
//	slope     = (n·Σxy − Σx·Σy) / (n·Σx² − (Σx)²)
//	intercept = (Σy·Σx² − Σx·Σxy) / (n·Σx² − (Σx)²)
//
// and then predicts y = intercept + slope·x for single values or sequences.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/simplereg/linear"
//	)
//
//	func main() {
//	    model := linear.NewSimpleLinearRegression()
//	    x := []float64{43, 21, 25, 42, 57, 59}
//	    y := []float64{99, 65, 79, 75, 87, 81}
//	    if err := model.Fit(x, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    eq, _ := model.Describe()
//	    fmt.Println(eq) // y = 65.14 + 0.39 * x
//
//	    pred, _ := model.PredictOne(26)
//	    fmt.Printf("%.2f\n", pred) // 75.16
//	}
//
// # Packages
//
//   - linear: SimpleLinearRegression
//   - metrics: Evaluation metrics (MSE, RMSE, MAE, R²)
//   - dataset: CSV and contest-format readers
//   - viz: PNG (gonum/plot) and HTML (go-echarts) charts of a fit
//   - core/model: Core interfaces, weight export and gob persistence
//   - pkg/errors: Structured errors built on cockroachdb/errors
//   - pkg/log: Logger interface with slog and zerolog backends
//
// # Error Handling
//
// Using a model before Fit returns *errors.NotFittedError. Fitting data
// whose x values are all equal (including a single sample) returns
// *errors.DegenerateInputError and leaves the previous fit untouched:
//
//	if err := model.Fit(x, y); err != nil {
//	    var deg *errors.DegenerateInputError
//	    if errors.As(err, &deg) {
//	        // x has no spread
//	    }
//	}
//
// # Logging
//
// Models log through pkg/log. Call log.SetupLogger("debug") for JSON output
// via slog, or install a zerolog backend with log.SetProvider.
package simplereg
