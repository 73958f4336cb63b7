package dao_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agora_dao/dao"
)

func TestVoteRecordsPowerAndRewards(t *testing.T) {
	f := newFixture(t, nil)
	f.join("bob", 5000)
	require.NoError(t, f.dao.Deposit("whale", 10_000))
	f.stake("bob", 1000)

	id := f.propose("bob", "carol", 100)

	before, err := f.dao.GetMember("bob")
	require.NoError(t, err)
	power, err := f.dao.VotingPower("bob")
	require.NoError(t, err)
	// staked 1000 plus floor(reputation/10)
	assert.Equal(t, before.Staked+dao.Amount(before.Reputation/10), power)

	require.NoError(t, f.dao.Vote("bob", id, true))

	p, err := f.dao.GetProposal(id)
	require.NoError(t, err)
	assert.Equal(t, power, p.YesVotes)
	assert.Equal(t, dao.Amount(0), p.NoVotes)
	assert.Equal(t, uint64(1), p.VoterCount)

	after, err := f.dao.GetMember("bob")
	require.NoError(t, err)
	assert.Equal(t, before.VotesCast+1, after.VotesCast)
	assert.Equal(t, before.Balance+dao.FallbackVoteReward, after.Balance)
	assert.Equal(t, before.Earned+dao.FallbackVoteReward, after.Earned)

	info, err := f.dao.VoteOf(id, "bob")
	require.NoError(t, err)
	assert.True(t, info.Approve)
	assert.Equal(t, power, info.Power)

	ev := f.lastEvent()
	assert.Equal(t, dao.EvVoteCast, ev.Type)
	assert.Equal(t, "true", ev.Attrs["choice"])
}

func TestVoteTwiceFailsAndKeepsFirstTally(t *testing.T) {
	f := newFixture(t, nil)
	f.join("bob", 5000)
	f.stake("bob", 1000)

	id, err := f.dao.CreateProposal("bob", dao.CreateProposalArgs{
		Title: "gov question", Category: dao.CategoryGovernance, Amount: 100,
	})
	require.NoError(t, err)

	require.NoError(t, f.dao.Vote("bob", id, true))
	p1, err := f.dao.GetProposal(id)
	require.NoError(t, err)

	err = f.dao.Vote("bob", id, false)
	require.ErrorIs(t, err, dao.ErrAlreadyVoted)
	assert.Equal(t, dao.KindAlreadyDone, dao.KindOf(err))

	p2, err := f.dao.GetProposal(id)
	require.NoError(t, err)
	assert.Equal(t, p1.YesVotes, p2.YesVotes)
	assert.Equal(t, p1.NoVotes, p2.NoVotes)
	assert.Equal(t, uint64(1), p2.VoterCount)
}

func TestVotePowerIsFrozenAtCast(t *testing.T) {
	f := newFixture(t, flatParams)
	f.join("bob", 5000)
	f.stake("bob", 200)

	id, err := f.dao.CreateProposal("bob", dao.CreateProposalArgs{
		Title: "gov question", Category: dao.CategoryGovernance, Amount: 100,
	})
	require.NoError(t, err)
	require.NoError(t, f.dao.Vote("bob", id, true))

	// stake more afterwards; the recorded vote must not move
	f.stake("bob", 3000)
	p, err := f.dao.GetProposal(id)
	require.NoError(t, err)
	assert.Equal(t, dao.Amount(200), p.YesVotes)

	info, err := f.dao.VoteOf(id, "bob")
	require.NoError(t, err)
	assert.Equal(t, dao.Amount(200), info.Power)
}

func TestVoteAfterWindowFails(t *testing.T) {
	f := newFixture(t, nil)
	f.join("bob", 5000)
	f.stake("bob", 1000)

	id, err := f.dao.CreateProposal("bob", dao.CreateProposalArgs{
		Title: "gov question", Category: dao.CategoryGovernance, Amount: 100,
	})
	require.NoError(t, err)

	f.clk.Add(dao.FallbackVotingPeriod + time.Second)
	err = f.dao.Vote("bob", id, true)
	require.ErrorIs(t, err, dao.ErrVotingEnded)
	assert.Equal(t, dao.KindInvalidState, dao.KindOf(err))
}

func TestVoteWithZeroPowerFails(t *testing.T) {
	f := newFixture(t, flatParams)
	f.join("bob", 5000)
	f.join("idle", 0) // no stake, flat reputation -> zero power
	f.stake("bob", 1000)

	pid, err := f.dao.CreateProposal("bob", dao.CreateProposalArgs{
		Title: "gov question", Category: dao.CategoryGovernance, Amount: 100,
	})
	require.NoError(t, err)

	err = f.dao.Vote("idle", pid, true)
	require.ErrorIs(t, err, dao.ErrNoVotingPower)
	assert.Equal(t, dao.KindInsufficientResources, dao.KindOf(err))
}

func TestVoteOnExecutedProposalFails(t *testing.T) {
	f := newFixture(t, flatParams)
	f.join("bob", 5000)
	f.join("late", 5000)
	f.stake("bob", 500)
	f.stake("late", 500)

	id, err := f.dao.CreateProposal("bob", dao.CreateProposalArgs{
		Title: "gov question", Category: dao.CategoryGovernance, Amount: 100,
	})
	require.NoError(t, err)
	require.NoError(t, f.dao.Vote("bob", id, true))

	f.pastExecution(id)
	_, err = f.dao.Execute("anyone", id)
	require.NoError(t, err)

	err = f.dao.Vote("late", id, true)
	require.ErrorIs(t, err, dao.ErrProposalNotOpen)
}

func TestVoteOnUnknownProposalFails(t *testing.T) {
	f := newFixture(t, nil)
	f.join("bob", 5000)

	err := f.dao.Vote("bob", 99, true)
	require.ErrorIs(t, err, dao.ErrProposalNotFound)

	voted, err := f.dao.HasVoted(0, "bob")
	require.ErrorIs(t, err, dao.ErrProposalNotFound)
	assert.False(t, voted)
}
