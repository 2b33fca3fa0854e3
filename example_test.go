//go:build unit

package money_test

import (
	"errors"
	"fmt"

	"github.com/Reservix/money"
)

func ExampleMoney_Allocate() {
	total := money.MustOf(100, "USD")

	shares, err := total.Allocate(1, 1, 1)
	if err != nil {
		panic(err)
	}

	for _, share := range shares {
		fmt.Println(share)
	}

	// Output:
	// 34 USD
	// 33 USD
	// 33 USD
}

func ExampleMoney_Multiply() {
	price := money.MustOf(5, "EUR")

	for _, mode := range []money.RoundingMode{
		money.RoundHalfUp,
		money.RoundHalfDown,
		money.RoundHalfEven,
		money.RoundHalfOdd,
	} {
		half, err := price.Multiply(0.5, mode)
		if err != nil {
			panic(err)
		}

		fmt.Printf("%s: %d\n", mode, half.Amount())
	}

	// Output:
	// HALF_UP: 3
	// HALF_DOWN: 2
	// HALF_EVEN: 2
	// HALF_ODD: 3
}

func ExampleMoney_Add() {
	a := money.MustOf(150, "USD")
	b := money.MustOf(275, "USD")

	sum, err := a.Add(b)
	if err != nil {
		panic(err)
	}

	fmt.Println(sum)

	_, err = a.Add(money.MustOf(1, "EUR"))
	fmt.Println(errors.Is(err, money.ErrCurrencyMismatch))

	// Output:
	// 425 USD
	// true
}

func ExampleStringToUnits() {
	for _, text := range []string{"12", "12.5", "-3,07", "0.1"} {
		units, err := money.StringToUnits(text)
		if err != nil {
			panic(err)
		}

		fmt.Println(units)
	}

	// Output:
	// 1200
	// 1250
	// -307
	// 10
}
