package domain

import "github.com/gagliardetto/solana-go"

// DonationReceipt records one successful donation. Seq is the campaign's
// donation count right after the donation was applied.
type DonationReceipt struct {
	Address   solana.PublicKey
	Campaign  solana.PublicKey
	Donor     solana.PublicKey
	Amount    uint64
	Fee       uint64
	Net       uint64
	Seq       uint64
	DonatedAt int64
}
