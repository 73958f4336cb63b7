package dao_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agora_dao/dao"
)

func TestJoinSeedsWelcomeBalanceAndReputation(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.dao.Join("bob"))

	m, err := f.dao.GetMember("bob")
	require.NoError(t, err)
	assert.Equal(t, dao.Amount(dao.FallbackWelcomeBalance), m.Balance)
	assert.Equal(t, dao.Amount(0), m.Staked)
	assert.Equal(t, int64(dao.FallbackBaselineReputation), m.Reputation)
	assert.Equal(t, testGenesis.Unix(), m.JoinedAt)

	// welcome balance is minted, supply grows
	info, err := f.dao.GetTreasury()
	require.NoError(t, err)
	assert.Equal(t, dao.Amount(dao.FallbackInitialSupply/2+dao.FallbackWelcomeBalance), info.TotalSupply)

	ev := f.lastEvent()
	assert.Equal(t, dao.EvMemberJoined, ev.Type)
	assert.Equal(t, "bob", ev.Actor)
}

func TestJoinTwiceFails(t *testing.T) {
	f := newFixture(t, nil)

	require.NoError(t, f.dao.Join("bob"))
	err := f.dao.Join("bob")
	require.ErrorIs(t, err, dao.ErrAlreadyMember)
	assert.Equal(t, dao.KindAlreadyDone, dao.KindOf(err))
}

func TestStakeMovesBalanceAndEarnsReputation(t *testing.T) {
	f := newFixture(t, nil)
	f.join("bob", 5000)

	before, err := f.dao.GetMember("bob")
	require.NoError(t, err)

	require.NoError(t, f.dao.Stake("bob", 1200))

	after, err := f.dao.GetMember("bob")
	require.NoError(t, err)
	assert.Equal(t, before.Balance-1200, after.Balance)
	assert.Equal(t, dao.Amount(1200), after.Staked)
	// reputation grows by amount/100, truncating
	assert.Equal(t, before.Reputation+12, after.Reputation)
	// balance+staked is conserved by staking
	assert.Equal(t, before.Balance+before.Staked, after.Balance+after.Staked)

	info, err := f.dao.GetTreasury()
	require.NoError(t, err)
	assert.Equal(t, dao.Amount(1200), info.TotalStaked)
}

func TestStakeInsufficientBalance(t *testing.T) {
	f := newFixture(t, nil)
	f.join("bob", 0) // only the welcome balance

	err := f.dao.Stake("bob", dao.FallbackWelcomeBalance+1)
	require.ErrorIs(t, err, dao.ErrInsufficientTokens)
	assert.Equal(t, dao.KindInsufficientResources, dao.KindOf(err))

	// failed stake left nothing behind
	m, err := f.dao.GetMember("bob")
	require.NoError(t, err)
	assert.Equal(t, dao.Amount(dao.FallbackWelcomeBalance), m.Balance)
	assert.Equal(t, dao.Amount(0), m.Staked)
}

func TestStakeIsOneDirectional(t *testing.T) {
	// no unstake surface exists; staked credit stays locked. This pins the
	// behavior so nobody adds an exit path casually.
	f := newFixture(t, nil)
	f.join("bob", 5000)
	f.stake("bob", 500)

	m, err := f.dao.GetMember("bob")
	require.NoError(t, err)
	assert.Equal(t, dao.Amount(500), m.Staked)
}

func TestStakeHistorySnapshots(t *testing.T) {
	f := newFixture(t, nil)
	f.join("bob", 5000)

	f.stake("bob", 100)
	t1 := f.clk.Now().Unix()
	f.clk.Add(time.Hour)
	f.stake("bob", 200)
	t2 := f.clk.Now().Unix()

	at, err := f.dao.StakeAt("bob", t1)
	require.NoError(t, err)
	assert.Equal(t, dao.Amount(100), at)

	at, err = f.dao.StakeAt("bob", t2)
	require.NoError(t, err)
	assert.Equal(t, dao.Amount(300), at)

	// before any stake there is nothing
	at, err = f.dao.StakeAt("bob", t1-10)
	require.NoError(t, err)
	assert.Equal(t, dao.Amount(0), at)
}

func TestTransferTokens(t *testing.T) {
	f := newFixture(t, nil)
	f.join("bob", 1000)
	f.join("carol", 0)

	require.NoError(t, f.dao.TransferTokens("bob", "carol", 300))

	bob, err := f.dao.GetMember("bob")
	require.NoError(t, err)
	carol, err := f.dao.GetMember("carol")
	require.NoError(t, err)
	assert.Equal(t, dao.Amount(800), bob.Balance)
	assert.Equal(t, dao.Amount(400), carol.Balance)
}

func TestTransferToUnknownRecipientFails(t *testing.T) {
	// no implicit account creation on transfer
	f := newFixture(t, nil)
	f.join("bob", 1000)

	err := f.dao.TransferTokens("bob", "ghost", 10)
	require.ErrorIs(t, err, dao.ErrMemberNotFound)

	bob, err := f.dao.GetMember("bob")
	require.NoError(t, err)
	assert.Equal(t, dao.Amount(1100), bob.Balance)
}

func TestTransferInsufficientBalance(t *testing.T) {
	f := newFixture(t, nil)
	f.join("bob", 0)
	f.join("carol", 0)

	err := f.dao.TransferTokens("bob", "carol", dao.FallbackWelcomeBalance+1)
	require.ErrorIs(t, err, dao.ErrInsufficientTokens)
}

func TestAdminDistribute(t *testing.T) {
	f := newFixture(t, nil)
	f.join("bob", 0)

	require.NoError(t, f.dao.AdminDistribute(adminAddr, "bob", 2500, "grant for infra work"))

	bob, err := f.dao.GetMember("bob")
	require.NoError(t, err)
	assert.Equal(t, dao.Amount(dao.FallbackWelcomeBalance+2500), bob.Balance)
	assert.Equal(t, dao.Amount(2500), bob.Earned)

	ev := f.lastEvent()
	assert.Equal(t, dao.EvTokensDistributed, ev.Type)
	assert.Equal(t, "grant for infra work", ev.Attrs["reason"])
}

func TestAdminDistributeRejectsNonAdmin(t *testing.T) {
	f := newFixture(t, nil)
	f.join("bob", 0)
	f.join("carol", 0)

	err := f.dao.AdminDistribute("bob", "carol", 100, "nope")
	require.ErrorIs(t, err, dao.ErrNotAuthorized)
	assert.Equal(t, dao.KindAuthorization, dao.KindOf(err))
}
