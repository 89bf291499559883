package bigint_test

import (
	"errors"
	"fmt"

	"github.com/agbru/dhcalc/internal/bigint"
	apperrors "github.com/agbru/dhcalc/internal/errors"
)

// ExampleMath_PowMod computes both public values and the shared secret of a
// toy Diffie-Hellman exchange with p = 23 and g = 5.
func ExampleMath_PowMod() {
	m, err := bigint.New("big")
	if err != nil {
		fmt.Println(err)
		return
	}
	p, _ := m.Init("23", 10)
	g, _ := m.Init("5", 10)
	a, _ := m.Init("6", 10)
	b, _ := m.Init("15", 10)

	pubA, _ := m.PowMod(g, a, p)
	pubB, _ := m.PowMod(g, b, p)
	secretA, _ := m.PowMod(pubB, a, p)
	secretB, _ := m.PowMod(pubA, b, p)

	fmt.Println(pubA, pubB, secretA, secretB)
	// Output:
	// 8 19 2 2
}

// ExampleMath_Invoke shows dispatch by operation name.
func ExampleMath_Invoke() {
	m, _ := bigint.New("big")

	q, _ := m.Invoke("divide", "17", "5")
	r, _ := m.Invoke("modulus", "17", "5")
	fmt.Println(q, r)

	_, err := m.Invoke("mod", "17", "5")
	var opErr apperrors.UnsupportedOperationError
	fmt.Println(errors.As(err, &opErr))
	// Output:
	// 3 2
	// true
}
