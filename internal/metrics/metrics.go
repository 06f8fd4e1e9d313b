// Package metrics exports ledger events as Prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"salina-hive/internal/core/domain"
	"salina-hive/internal/core/port"
)

const namespace = "hive"

// Collector implements port.Metrics on a private registry.
type Collector struct {
	reg *prometheus.Registry

	campaignsCreated prometheus.Counter
	campaignsDeleted prometheus.Counter
	donations        prometheus.Counter
	donatedLamports  prometheus.Counter
	feeLamports      prometheus.Counter
	withdrawals      prometheus.Counter
	withdrawnAmount  prometheus.Counter
	failures         *prometheus.CounterVec
}

var _ port.Metrics = (*Collector)(nil)

// New registers the ledger counters, plus the Go runtime and process
// collectors, on a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)
	return &Collector{
		reg: reg,
		campaignsCreated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "campaigns_created_total",
			Help: "Campaigns created.",
		}),
		campaignsDeleted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "campaigns_deleted_total",
			Help: "Campaigns soft-deleted.",
		}),
		donations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "donations_total",
			Help: "Donations applied.",
		}),
		donatedLamports: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "donated_lamports_total",
			Help: "Net lamports credited to campaigns.",
		}),
		feeLamports: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "fee_lamports_total",
			Help: "Lamports credited to the platform treasury.",
		}),
		withdrawals: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "withdrawals_total",
			Help: "Successful withdrawals, including zero-amount ones.",
		}),
		withdrawnAmount: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "withdrawn_lamports_total",
			Help: "Lamports withdrawn by campaign creators.",
		}),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "operation_failures_total",
			Help: "Rejected or failed operations by error code.",
		}, []string{"op", "code"}),
	}
}

func (c *Collector) CampaignCreated() { c.campaignsCreated.Inc() }

func (c *Collector) CampaignDeleted() { c.campaignsDeleted.Inc() }

func (c *Collector) DonationApplied(net, fee uint64) {
	c.donations.Inc()
	c.donatedLamports.Add(float64(net))
	c.feeLamports.Add(float64(fee))
}

func (c *Collector) Withdrawn(amount uint64) {
	c.withdrawals.Inc()
	c.withdrawnAmount.Add(float64(amount))
}

func (c *Collector) OperationFailed(op string, code domain.Code) {
	c.failures.WithLabelValues(op, string(code)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{Registry: c.reg})
}
