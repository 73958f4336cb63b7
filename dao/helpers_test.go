package dao_test

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"agora_dao/audit"
	"agora_dao/dao"
	"agora_dao/metrics"
	"agora_dao/state"
)

const adminAddr dao.Address = "alice-admin"

var testGenesis = time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)

// fixture wires a DAO handle on an in-memory store with a mock clock, so tests
// can step through voting windows and execution delays deterministically.
type fixture struct {
	t    *testing.T
	dao  *dao.DAO
	clk  *clock.Mock
	sink *audit.MemorySink
	st   *state.Memory
	met  *metrics.Metrics
}

// newFixture initializes a fresh treasury. mut lets a test bend params before
// the handle is built.
func newFixture(t *testing.T, mut func(*dao.Params)) *fixture {
	t.Helper()
	params := dao.DefaultParams()
	if mut != nil {
		mut(&params)
	}
	require.NoError(t, params.Validate())

	clk := clock.NewMock()
	clk.Set(testGenesis)
	sink := audit.NewMemorySink()
	st := state.NewMemory()
	met := metrics.New()
	d := dao.New(st, params,
		dao.WithClock(clk),
		dao.WithAuditSink(sink),
		dao.WithMetrics(met),
	)
	require.NoError(t, d.Initialize(adminAddr))
	return &fixture{t: t, dao: d, clk: clk, sink: sink, st: st, met: met}
}

// join adds a member and optionally tops up their balance from the genesis
// allocation so they clear staking and proposing thresholds.
func (f *fixture) join(addr dao.Address, grant dao.Amount) {
	f.t.Helper()
	require.NoError(f.t, f.dao.Join(addr))
	if grant > 0 {
		require.NoError(f.t, f.dao.TransferTokens(adminAddr, addr, grant))
	}
}

// stake is a must-succeed stake.
func (f *fixture) stake(addr dao.Address, amount dao.Amount) {
	f.t.Helper()
	require.NoError(f.t, f.dao.Stake(addr, amount))
}

// propose opens a funding proposal with must-succeed semantics.
func (f *fixture) propose(proposer dao.Address, recipient dao.Address, amount dao.Amount) uint64 {
	f.t.Helper()
	id, err := f.dao.CreateProposal(proposer, dao.CreateProposalArgs{
		Title:       "fund the thing",
		Description: "pay for the thing",
		Category:    dao.CategoryFunding,
		Recipient:   recipient,
		Amount:      amount,
	})
	require.NoError(f.t, err)
	return id
}

// pastExecution advances the mock clock beyond the proposal's execution
// eligibility time.
func (f *fixture) pastExecution(id uint64) {
	f.t.Helper()
	p, err := f.dao.GetProposal(id)
	require.NoError(f.t, err)
	target := time.Unix(p.ExecutableAt, 0)
	if d := target.Sub(f.clk.Now()); d > 0 {
		f.clk.Add(d)
	}
}

// lastEvent fetches the newest audit entry.
func (f *fixture) lastEvent() audit.Event {
	f.t.Helper()
	ev, ok := f.sink.Last()
	require.True(f.t, ok, "expected at least one audit event")
	return ev
}

// flatParams zeroes out reputation inputs so voting power equals staked
// balance exactly, which keeps quorum arithmetic legible in tests.
func flatParams(p *dao.Params) {
	p.BaselineReputation = 0
	p.StakeReputationDivisor = 1 << 40
	p.PowerReputationDivisor = 1 << 40
	p.VoteReputationBonus = 0
	p.ProposalReputationBonus = 0
}
