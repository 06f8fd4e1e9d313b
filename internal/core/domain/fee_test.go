package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitDonation(t *testing.T) {
	tests := []struct {
		name    string
		amount  uint64
		feeBps  uint16
		wantFee uint64
		wantNet uint64
	}{
		{"zero fee", 1000, 0, 0, 1000},
		{"2.5 percent of 500", 500, 250, 12, 488},
		{"2.5 percent of 600", 600, 250, 15, 585},
		{"full fee", 1000, MaxFeeBps, 1000, 0},
		{"rounds down", 1, 9999, 0, 1},
		{"max amount", math.MaxUint64, 250, 461168601842738790, math.MaxUint64 - 461168601842738790},
		{"max amount full fee", math.MaxUint64, MaxFeeBps, math.MaxUint64, 0},
		{"above 100 percent falls back to zero fee", 1000, 20000, 0, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, net := SplitDonation(tt.amount, tt.feeBps)
			assert.Equal(t, tt.wantFee, fee)
			assert.Equal(t, tt.wantNet, net)
		})
	}
}

// TestSplitDonationConserves checks fee+net == amount and fee <= amount
// over the whole basis point domain.
func TestSplitDonationConserves(t *testing.T) {
	amounts := []uint64{1, 7, 999, 10_000, 123_456_789, math.MaxUint64 / 3, math.MaxUint64}
	for bps := 0; bps <= MaxFeeBps; bps += 7 {
		for _, amount := range amounts {
			fee, net := SplitDonation(amount, uint16(bps))
			if fee+net != amount || fee > amount {
				t.Fatalf("amount=%d bps=%d: fee=%d net=%d", amount, bps, fee, net)
			}
		}
	}
}

func TestSaturatingArithmetic(t *testing.T) {
	assert.Equal(t, uint64(5), SaturatingAdd(2, 3))
	assert.Equal(t, uint64(math.MaxUint64), SaturatingAdd(math.MaxUint64, 1))
	assert.Equal(t, uint64(math.MaxUint64), SaturatingAdd(math.MaxUint64-1, math.MaxUint64-1))
	assert.Equal(t, uint64(6), SaturatingMul(2, 3))
	assert.Equal(t, uint64(math.MaxUint64), SaturatingMul(math.MaxUint64, 2))
	assert.Equal(t, uint64(0), SaturatingMul(math.MaxUint64, 0))
}
