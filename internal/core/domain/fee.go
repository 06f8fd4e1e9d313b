package domain

import "math/bits"

// SplitDonation divides amount into the platform fee and the net amount
// credited to the campaign. The product amount*feeBps is computed on 128
// bits; if the quotient cannot be represented the fee is zero.
func SplitDonation(amount uint64, feeBps uint16) (fee, net uint64) {
	hi, lo := bits.Mul64(amount, uint64(feeBps))
	if hi >= MaxFeeBps {
		return 0, amount
	}
	fee, _ = bits.Div64(hi, lo, MaxFeeBps)
	if fee > amount {
		fee = 0
	}
	return fee, amount - fee
}

// SaturatingAdd returns a+b clamped to the maximum uint64.
func SaturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return ^uint64(0)
	}
	return sum
}

// SaturatingMul returns a*b clamped to the maximum uint64.
func SaturatingMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return ^uint64(0)
	}
	return lo
}
