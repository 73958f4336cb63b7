// Package dao implements a governance-and-treasury engine: members stake a
// governance credit for voting power, submit funding proposals, vote inside a
// fixed window and, after a mandatory delay, trigger an execution that either
// releases pooled funds or rejects the proposal, gated by a quorum check.
//
// The engine assumes serially-applied calls against one State; it provides
// correctness under that serialization, not concurrency control of its own.
// Every operation validates fully before its first write, so a returned error
// means no state changed.
package dao

import (
	"log/slog"

	"github.com/benbjohnson/clock"

	"agora_dao/audit"
	"agora_dao/metrics"
)

// DAO is the explicitly passed treasury handle. One handle per treasury
// instance; created by New, armed by Initialize, lives for the process.
type DAO struct {
	st     State
	clk    clock.Clock
	params Params
	sink   audit.Sink
	met    *metrics.Metrics
	log    *slog.Logger
}

// Option tweaks a DAO handle at construction time.
type Option func(*DAO)

// WithClock swaps the trusted time source. Tests drive a mock clock through
// voting windows and execution delays.
func WithClock(c clock.Clock) Option {
	return func(d *DAO) { d.clk = c }
}

// WithAuditSink attaches an append-only sink receiving every state-change event.
func WithAuditSink(s audit.Sink) Option {
	return func(d *DAO) { d.sink = s }
}

// WithMetrics attaches engine counters/gauges.
func WithMetrics(m *metrics.Metrics) Option {
	return func(d *DAO) { d.met = m }
}

// WithLogger overrides the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *DAO) { d.log = l }
}

// New wires a handle around a state store. Call Initialize once per fresh
// store before anything else.
func New(st State, params Params, opts ...Option) *DAO {
	d := &DAO{
		st:     st,
		clk:    clock.New(),
		params: params,
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Params returns the tunables this handle runs on.
func (d *DAO) Params() Params { return d.params }

// now reads the single trusted clock at the moment of the call. All
// correctness-relevant comparisons use this, never caller-supplied timestamps.
func (d *DAO) now() int64 { return d.clk.Now().Unix() }

// Initialize creates the treasury record and seeds the genesis member, who
// becomes admin and receives half the initial token supply. Fails if the
// store already holds a treasury.
func (d *DAO) Initialize(admin Address) error {
	if ptr := d.st.Get(treasuryKey()); ptr != nil {
		return ErrAlreadyInitialized
	}
	if admin == "" {
		return ErrInvalidAddress
	}
	now := d.now()
	seed := d.params.InitialSupply / 2
	t := &Treasury{
		TotalFunds:  0,
		TotalSupply: seed,
		TotalStaked: 0,
		Paused:      false,
		Admin:       admin,
		CreatedAt:   now,
	}
	genesis := &Member{
		Address:    admin,
		Balance:    seed,
		Reputation: d.params.BaselineReputation,
		JoinedAt:   now,
	}
	d.saveTreasury(t)
	d.saveMember(genesis)
	d.setCount(ProposalsCount, 0)
	d.emitInitialized(admin, seed, now)
	if d.met != nil {
		d.met.MembersJoined.Inc()
	}
	d.syncGauges(t)
	return nil
}

// emit hands the event to the audit sink and mirrors it on the logger in the
// compact pipe form. Sink delivery failures are logged, not propagated: the
// state transition already committed and external indexers can re-sync from
// storage.
func (d *DAO) emit(ev audit.Event) {
	d.log.Debug("audit event", slog.String("event", ev.Compact()))
	if d.sink == nil {
		return
	}
	if err := d.sink.Append(ev); err != nil {
		d.log.Error("audit sink append failed",
			slog.String("type", ev.Type), slog.String("error", err.Error()))
	}
}

// syncGauges pushes treasury aggregates into the metrics registry.
func (d *DAO) syncGauges(t *Treasury) {
	if d.met == nil {
		return
	}
	d.met.TotalFunds.Set(float64(t.TotalFunds))
	d.met.TotalStaked.Set(float64(t.TotalStaked))
}

// -----------------------------------------------------------------------------
// Record load/save helpers
// -----------------------------------------------------------------------------

// loadTreasury reads the custodial record, failing if Initialize never ran.
func (d *DAO) loadTreasury() (*Treasury, error) {
	ptr := d.st.Get(treasuryKey())
	if ptr == nil || *ptr == "" {
		return nil, ErrNotInitialized
	}
	t, err := DecodeTreasury([]byte(*ptr))
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (d *DAO) saveTreasury(t *Treasury) {
	d.st.Set(treasuryKey(), string(EncodeTreasury(t)))
}

// loadMember fetches a ledger record by address.
func (d *DAO) loadMember(addr Address) (*Member, error) {
	ptr := d.st.Get(memberKey(addr))
	if ptr == nil || *ptr == "" {
		return nil, ErrMemberNotFound
	}
	m, err := DecodeMember([]byte(*ptr))
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (d *DAO) saveMember(m *Member) {
	d.st.Set(memberKey(m.Address), string(EncodeMember(m)))
}

// hasMember is the cheap existence probe used by validation paths.
func (d *DAO) hasMember(addr Address) bool {
	ptr := d.st.Get(memberKey(addr))
	return ptr != nil && *ptr != ""
}

// loadProposal fetches a proposal record by id.
func (d *DAO) loadProposal(id uint64) (*Proposal, error) {
	ptr := d.st.Get(proposalKey(id))
	if ptr == nil || *ptr == "" {
		return nil, ErrProposalNotFound
	}
	p, err := DecodeProposal([]byte(*ptr))
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (d *DAO) saveProposal(p *Proposal) {
	d.st.Set(proposalKey(p.ID), string(EncodeProposal(p)))
}

// requireNotPaused gates every mutating operation.
func requireNotPaused(t *Treasury) error {
	if t.Paused {
		return ErrDaoPaused
	}
	return nil
}

// requireAdmin gates the privileged surface.
func requireAdmin(t *Treasury, caller Address) error {
	if caller != t.Admin {
		return ErrNotAuthorized
	}
	return nil
}
