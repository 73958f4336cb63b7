// Package metrics exposes engine counters and gauges on a private prometheus
// registry, so embedding hosts can mount it wherever they serve metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles every collector the engine touches.
type Metrics struct {
	registry *prometheus.Registry

	MembersJoined     prometheus.Counter
	TokensStaked      prometheus.Counter
	ProposalsCreated  prometheus.Counter
	VotesCast         prometheus.Counter
	ProposalsExecuted *prometheus.CounterVec
	FundsDeposited    prometheus.Counter
	FundsDisbursed    prometheus.Counter
	TotalFunds        prometheus.Gauge
	TotalStaked       prometheus.Gauge
}

// New builds the collector set on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		MembersJoined: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dao_members_joined_total",
			Help: "Members created via join or genesis.",
		}),
		TokensStaked: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dao_tokens_staked_total",
			Help: "Governance credit moved from balance to stake.",
		}),
		ProposalsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dao_proposals_created_total",
			Help: "Proposals entering the Open state.",
		}),
		VotesCast: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dao_votes_cast_total",
			Help: "Votes recorded on open proposals.",
		}),
		ProposalsExecuted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dao_proposals_executed_total",
			Help: "Executions by terminal result.",
		}, []string{"result"}),
		FundsDeposited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dao_funds_deposited_total",
			Help: "Settlement currency deposited into custody.",
		}),
		FundsDisbursed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dao_funds_disbursed_total",
			Help: "Settlement currency released by funded proposals.",
		}),
		TotalFunds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dao_treasury_funds",
			Help: "Current custodial settlement balance.",
		}),
		TotalStaked: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dao_total_staked",
			Help: "Current aggregate staked governance credit.",
		}),
	}
	m.registry.MustRegister(
		m.MembersJoined,
		m.TokensStaked,
		m.ProposalsCreated,
		m.VotesCast,
		m.ProposalsExecuted,
		m.FundsDeposited,
		m.FundsDisbursed,
		m.TotalFunds,
		m.TotalStaked,
	)
	return m
}

// Registry exposes the private registry for the host's metrics endpoint.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
