package workflow

import "smarttour/pkg/model"

const (
	DefaultServiceFeeRate = 0.05
	DefaultTaxRate        = 0.16
)

type Rates struct {
	ServiceFee float64
	Tax        float64
}

func DefaultRates() Rates {
	return Rates{ServiceFee: DefaultServiceFeeRate, Tax: DefaultTaxRate}
}

// CalculateQuote prices a tour for a party. A guest count below 1 counts as one guest.
// Both the fee and the tax are applied to the subtotal, never to each other.
func CalculateQuote(price float64, guests int, rates Rates) model.Quote {
	if guests < 1 {
		guests = 1
	}
	subtotal := price * float64(guests)
	fee := subtotal * rates.ServiceFee
	taxes := subtotal * rates.Tax
	return model.Quote{
		Subtotal:   subtotal,
		ServiceFee: fee,
		Taxes:      taxes,
		Total:      subtotal + fee + taxes,
	}
}
