package dao_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agora_dao/dao"
)

func TestDepositGrowsCustody(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.dao.Deposit("anyone-at-all", 4000))
	require.NoError(t, f.dao.Deposit("someone-else", 600))

	info, err := f.dao.GetTreasury()
	require.NoError(t, err)
	assert.Equal(t, dao.Amount(4600), info.TotalFunds)

	ev := f.lastEvent()
	assert.Equal(t, dao.EvFundsDeposited, ev.Type)
	assert.Equal(t, "4600", ev.Attrs["total"])
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(t, nil)

	err := f.dao.Deposit("bob", 0)
	require.ErrorIs(t, err, dao.ErrInvalidAmount)
	err = f.dao.Deposit("bob", -5)
	require.ErrorIs(t, err, dao.ErrInvalidAmount)
}

func TestPauseGatesMutations(t *testing.T) {
	f := newFixture(t, nil)
	f.join("bob", 5000)

	require.NoError(t, f.dao.Pause(adminAddr))

	assert.ErrorIs(t, f.dao.Join("carol"), dao.ErrDaoPaused)
	assert.ErrorIs(t, f.dao.Deposit("bob", 100), dao.ErrDaoPaused)
	assert.ErrorIs(t, f.dao.Stake("bob", 100), dao.ErrDaoPaused)
	assert.ErrorIs(t, f.dao.TransferTokens("bob", adminAddr, 10), dao.ErrDaoPaused)
	_, err := f.dao.CreateProposal("bob", dao.CreateProposalArgs{
		Title: "x", Category: dao.CategoryGovernance, Amount: 100,
	})
	assert.ErrorIs(t, err, dao.ErrDaoPaused)

	// reads still work while paused
	_, err = f.dao.GetTreasury()
	require.NoError(t, err)

	require.NoError(t, f.dao.Unpause(adminAddr))
	require.NoError(t, f.dao.Join("carol"))
}

func TestPauseIsAdminOnly(t *testing.T) {
	f := newFixture(t, nil)
	f.join("bob", 0)

	require.ErrorIs(t, f.dao.Pause("bob"), dao.ErrNotAuthorized)
	require.ErrorIs(t, f.dao.Unpause("bob"), dao.ErrNotAuthorized)
}

func TestPauseEventsCarryResultingState(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.dao.Pause(adminAddr))
	ev := f.lastEvent()
	assert.Equal(t, dao.EvPaused, ev.Type)
	assert.Equal(t, "true", ev.Attrs["paused"])
	assert.Equal(t, adminAddr.String(), ev.Actor)

	require.NoError(t, f.dao.Unpause(adminAddr))
	ev = f.lastEvent()
	assert.Equal(t, dao.EvUnpaused, ev.Type)
	assert.Equal(t, "false", ev.Attrs["paused"])
}
