package linear

import "math"

// sums は正規方程式に必要な集計値を保持する
type sums struct {
	n   float64
	sx  float64 // Σx
	sy  float64 // Σy
	sxy float64 // Σxy
	sxx float64 // Σx²
}

// accumulate は1回の走査で集計値を求める
// constantX はすべての x が同じ値のとき true（n == 1 も含む）
func accumulate(x, y []float64) (s sums, constantX bool) {
	constantX = true
	for i, xi := range x {
		yi := y[i]
		s.sx += xi
		s.sy += yi
		s.sxy += xi * yi
		s.sxx += xi * xi
		if xi != x[0] {
			constantX = false
		}
	}
	s.n = float64(len(x))
	return s, constantX
}

// denominator は n·Σx² − (Σx)² を返す
func (s sums) denominator() float64 {
	return s.n*s.sxx - s.sx*s.sx
}

// solve は単回帰の正規方程式を解く
//
//	slope     = (n·Σxy − Σx·Σy) / (n·Σx² − (Σx)²)
//	intercept = (Σy·Σx² − Σx·Σxy) / (n·Σx² − (Σx)²)
//
// 分母がゼロ、または集計がオーバーフローして結果が有限にならない場合は ok == false
func (s sums) solve() (slope, intercept float64, ok bool) {
	d := s.denominator()
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, 0, false
	}
	slope = (s.n*s.sxy - s.sx*s.sy) / d
	intercept = (s.sy*s.sxx - s.sx*s.sxy) / d
	if !isFinite(slope) || !isFinite(intercept) {
		return 0, 0, false
	}
	return slope, intercept, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
