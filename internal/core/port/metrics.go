package port

import "salina-hive/internal/core/domain"

// Metrics receives committed ledger events. Implementations must be safe
// for concurrent use.
type Metrics interface {
	CampaignCreated()
	CampaignDeleted()
	DonationApplied(net, fee uint64)
	Withdrawn(amount uint64)
	OperationFailed(op string, code domain.Code)
}

// NopMetrics discards every event.
type NopMetrics struct{}

func (NopMetrics) CampaignCreated() {}
func (NopMetrics) CampaignDeleted() {}
func (NopMetrics) DonationApplied(uint64, uint64) {}
func (NopMetrics) Withdrawn(uint64) {}
func (NopMetrics) OperationFailed(string, domain.Code) {}
