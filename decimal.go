package orc

import (
	"encoding/json"
	"math"
	"math/big"
)

// Decimal is a decimal type.
type Decimal struct {
	Abs *big.Int
	Exp int64
}

// Float64 returns the float64 equivalent of the Decimal value.
func (d Decimal) Float64() float64 {
	return float64(d.Abs.Int64()) / (1 / math.Pow(10, -float64(d.Exp)))
}

// Float32 returns the float32 equivalent of the Decimal value.
func (d Decimal) Float32() float32 {
	return float32(d.Float64())
}

// MarshalJSON implements the json.Marshaller interface.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Float64())
}
