package decomp_test

import (
	"testing"

	"github.com/katalvlaran/linmorph/decomp"
	"github.com/katalvlaran/linmorph/mat2"
)

var sinkU, sinkS, sinkVt mat2.Matrix2

// BenchmarkSVD measures the two-eigensolve SVD.
func BenchmarkSVD(b *testing.B) {
	a := mat2.Matrix2{{3, 0}, {4, 5}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkU, sinkS, sinkVt = decomp.SVD(a)
	}
}

// BenchmarkSchur measures the Schur form.
func BenchmarkSchur(b *testing.B) {
	a := mat2.Matrix2{{4, 1}, {2, 3}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkU, sinkS, sinkVt = decomp.Schur(a)
	}
}
