package domain

import "github.com/gagliardetto/solana-go"

// MaxFeeBps is 100% expressed in basis points.
const MaxFeeBps = 10_000

// PlatformSpace is the fixed serialized size of the platform record.
const PlatformSpace = 8 + 32 + 2 + 32 + 8 + 1

// Platform is the singleton configuration record. It owns the campaign id
// namespace and, unless configured otherwise, custodies collected fees.
type Platform struct {
	Address       solana.PublicKey
	Authority     solana.PublicKey
	FeeBps        uint16
	Treasury      solana.PublicKey
	CampaignCount uint64
	Bump          uint8
}

// ValidateFeeBps rejects rates above 100%.
func ValidateFeeBps(bps uint16) error {
	if bps > MaxFeeBps {
		return ErrInvalidFee
	}
	return nil
}

// NextCampaignID returns the id the next campaign will receive.
func (p *Platform) NextCampaignID() (uint64, error) {
	if p.CampaignCount == ^uint64(0) {
		return 0, ErrCampaignCountExhausted
	}
	return p.CampaignCount + 1, nil
}

// IsAuthority reports whether who may change the platform settings.
func (p *Platform) IsAuthority(who solana.PublicKey) bool {
	return p.Authority.Equals(who)
}
