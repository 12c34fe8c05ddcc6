// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mlr/matrix"
)

// benchSizes are the sizes for the O(n³) and elementwise kernels.
var benchSizes = []int{16, 64, 128}

// cofactorSizes stay small: the determinant family is factorial in n.
var cofactorSizes = []int{4, 6, 8}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkV []float64
	sinkF float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1337))
			A, B := RandDominant(rng, n), RandDominant(rng, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(4242))
			A, B := RandDominant(rng, n), RandDominant(rng, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(7))
			A := RandDominant(rng, n)
			x := make([]float64, n)
			for i := range x {
				x[i] = rng.Float64()
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range cofactorSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDominant(rand.New(rand.NewSource(99)), n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

// BenchmarkDeterminantGonumLU is the O(n³) baseline for BenchmarkDeterminant.
func BenchmarkDeterminantGonumLU(b *testing.B) {
	b.ReportAllocs()
	for _, n := range cofactorSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g, err := matrix.ToGonum(RandDominant(rand.New(rand.NewSource(99)), n))
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkF = mat.Det(g)
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range cofactorSizes[:2] {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandDominant(rand.New(rand.NewSource(5)), n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
