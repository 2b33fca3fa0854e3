// Package currency provides the Currency value type and the read-only registry
// of known currency codes it is validated against.
//
// A Currency can only be obtained through a Registry (or the process-wide
// default registry via New), so every live non-zero Currency is known to be
// valid:
//
//	usd, err := currency.New("USD")
//	if err != nil {
//	    return fmt.Errorf("resolve currency: %w", err)
//	}
//
// The default registry is loaded lazily, exactly once, from an embedded ISO
// 4217 table or from the YAML file named by MONEY_CURRENCY_REGISTRY.
// Registries built explicitly with NewRegistry or LoadRegistry can be passed
// around as dependencies instead.
package currency
