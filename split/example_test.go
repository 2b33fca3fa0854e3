//go:build unit

package split_test

import (
	"fmt"

	"github.com/Reservix/money"
	"github.com/Reservix/money/split"
)

func ExamplePlan() {
	fee := money.MustOf(250, "USD")
	partner := 1.0
	merchant := 3.0

	shares, err := split.Plan(money.MustOf(10000, "USD"), []split.Part{
		{Name: "platform", Amount: &fee},
		{Name: "partner", Ratio: &partner},
		{Name: "merchant", Ratio: &merchant},
	})
	if err != nil {
		panic(err)
	}

	for _, share := range shares {
		fmt.Printf("%s %s\n", share.Name, share.Amount)
	}

	// Output:
	// platform 250 USD
	// partner 2438 USD
	// merchant 7312 USD
}
