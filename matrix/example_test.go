package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/piqs/matrix"
)

// ExampleBuilder assembles a tiny probability-conserving generator out of
// order, with a duplicate contribution, and audits its columns.
func ExampleBuilder() {
	b, err := matrix.NewBuilder(3)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	_ = b.Add(1, 0, 1.5)
	_ = b.Add(0, 0, -2.0)
	_ = b.Add(2, 0, 0.5)
	_ = b.Add(1, 0, 0.0) // zero contribution: dropped at Compress
	_ = b.Add(1, 1, -1.0)
	_ = b.Add(0, 1, 1.0)
	_ = b.Add(2, 2, -3.0)
	_ = b.Add(0, 2, 3.0)

	m := b.Compress()
	fmt.Printf("side=%d nnz=%d\n", m.Side(), m.NNZ())
	fmt.Println(m)
	fmt.Println("column sums:", m.ColSums())
	// Output:
	// side=3 nnz=7
	// (0,0)=-2, (0,1)=1, (0,2)=3, (1,0)=1.5, (1,1)=-1, (2,0)=0.5, (2,2)=-3
	// column sums: [0 0 0]
}

// ExampleCSR_MulVec applies the generator to a population vector — the
// right-hand side of the reduced rate equations.
func ExampleCSR_MulVec() {
	b, _ := matrix.NewBuilder(2)
	_ = b.Add(0, 0, -1)
	_ = b.Add(1, 0, 1)
	m := b.Compress()

	dp, err := m.MulVec([]float64{1, 0})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(dp)
	// Output:
	// [-1 1]
}
