package linear_test

import (
	"fmt"

	"github.com/YuminosukeSato/simplereg/linear"
	"github.com/YuminosukeSato/simplereg/pkg/errors"
)

func ExampleSimpleLinearRegression() {
	x := []float64{43, 21, 25, 42, 57, 59}
	y := []float64{99, 65, 79, 75, 87, 81}

	model := linear.NewSimpleLinearRegression()
	if err := model.Fit(x, y); err != nil {
		fmt.Println(err)
		return
	}

	equation, _ := model.Describe()
	fmt.Println(equation)

	prediction, _ := model.PredictOne(26)
	fmt.Printf("%.2f\n", prediction)

	batch, _ := model.PredictMany([]float64{20, 60})
	fmt.Printf("%.2f %.2f\n", batch[0], batch[1])

	// Output:
	// y = 65.14 + 0.39 * x
	// 75.16
	// 72.85 88.26
}

func ExampleSimpleLinearRegression_degenerate() {
	model := linear.NewSimpleLinearRegression()
	err := model.Fit([]float64{5, 5, 5}, []float64{1, 2, 3})

	var degErr *errors.DegenerateInputError
	fmt.Println(errors.As(err, &degErr), model.IsFitted())

	_, err = model.PredictOne(1)
	var notFitted *errors.NotFittedError
	fmt.Println(errors.As(err, &notFitted))

	// Output:
	// true false
	// true
}
