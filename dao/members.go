package dao

import (
	"fmt"
	"strconv"
	"strings"
)

// -----------------------------------------------------------------------------
// Token ledger operations
// -----------------------------------------------------------------------------

// Join creates a ledger record for the caller, seeded with the welcome balance
// and baseline reputation. The welcome balance is minted: total supply grows.
func (d *DAO) Join(caller Address) error {
	t, err := d.loadTreasury()
	if err != nil {
		return err
	}
	if err := requireNotPaused(t); err != nil {
		return err
	}
	if d.hasMember(caller) {
		return ErrAlreadyMember
	}
	now := d.now()
	m := &Member{
		Address:    caller,
		Balance:    d.params.WelcomeBalance,
		Reputation: d.params.BaselineReputation,
		JoinedAt:   now,
	}
	t.TotalSupply += d.params.WelcomeBalance
	d.saveMember(m)
	d.saveTreasury(t)
	d.emitMemberJoined(caller, d.params.WelcomeBalance, now)
	if d.met != nil {
		d.met.MembersJoined.Inc()
	}
	return nil
}

// Stake moves credit from the caller's balance into the staked sub-balance and
// grows reputation by amount/divisor. Staking is one-directional in this core:
// there is no unstake path, staked credit stays locked.
func (d *DAO) Stake(caller Address, amount Amount) error {
	t, err := d.loadTreasury()
	if err != nil {
		return err
	}
	if err := requireNotPaused(t); err != nil {
		return err
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	m, err := d.loadMember(caller)
	if err != nil {
		return err
	}
	if amount > m.Balance {
		return ErrInsufficientTokens
	}
	now := d.now()
	repGain := int64(amount) / d.params.StakeReputationDivisor
	m.Balance -= amount
	m.Staked += amount
	m.Reputation += repGain
	m.StakeIncrement++
	t.TotalStaked += amount
	d.saveMember(m)
	d.saveTreasury(t)
	d.saveStakeHistory(caller, m.Staked, now, m.StakeIncrement)
	d.emitTokensStaked(caller, amount, repGain, now)
	if d.met != nil {
		d.met.TokensStaked.Add(float64(amount))
	}
	d.syncGauges(t)
	return nil
}

// TransferTokens debits the sender and credits the recipient. The recipient
// must already hold a ledger record: transfers never create accounts
// implicitly, joining stays the only mint-on-entry path.
func (d *DAO) TransferTokens(from, to Address, amount Amount) error {
	t, err := d.loadTreasury()
	if err != nil {
		return err
	}
	if err := requireNotPaused(t); err != nil {
		return err
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	sender, err := d.loadMember(from)
	if err != nil {
		return err
	}
	recipient, err := d.loadMember(to)
	if err != nil {
		return err
	}
	if amount > sender.Balance {
		return ErrInsufficientTokens
	}
	now := d.now()
	if from == to {
		// degenerate self-transfer, balances unchanged
		d.emitTokensTransferred(from, to, amount, now)
		return nil
	}
	sender.Balance -= amount
	recipient.Balance += amount
	d.saveMember(sender)
	d.saveMember(recipient)
	d.emitTokensTransferred(from, to, amount, now)
	return nil
}

// rewardParticipation mints the fixed vote bonus into the member's balance and
// cumulative earnings. Called only from the vote path, after validation.
func (d *DAO) rewardParticipation(m *Member, t *Treasury, amount Amount) {
	m.Balance += amount
	m.Earned += amount
	t.TotalSupply += amount
}

// AdminDistribute lets the treasury administrator mint a grant to an existing
// member, with a free-form reason recorded on the audit trail.
func (d *DAO) AdminDistribute(caller, recipient Address, amount Amount, reason string) error {
	t, err := d.loadTreasury()
	if err != nil {
		return err
	}
	if err := requireNotPaused(t); err != nil {
		return err
	}
	if err := requireAdmin(t, caller); err != nil {
		return err
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	m, err := d.loadMember(recipient)
	if err != nil {
		return err
	}
	now := d.now()
	m.Balance += amount
	m.Earned += amount
	t.TotalSupply += amount
	d.saveMember(m)
	d.saveTreasury(t)
	d.emitTokensDistributed(caller, recipient, amount, reason, now)
	return nil
}

// -----------------------------------------------------------------------------
// Stake history
// -----------------------------------------------------------------------------

// saveStakeHistory appends a new stake snapshot for a member.
// Value format: {stake}_{timestamp}
func (d *DAO) saveStakeHistory(addr Address, stake Amount, timestamp int64, increment uint64) {
	d.st.Set(stakeHistoryKey(addr, increment), fmt.Sprintf("%d_%d", stake, timestamp))
}

// loadStakeHistory retrieves a specific stake snapshot by increment.
func (d *DAO) loadStakeHistory(addr Address, increment uint64) *StakeHistoryEntry {
	ptr := d.st.Get(stakeHistoryKey(addr, increment))
	if ptr == nil {
		return nil
	}
	parts := strings.Split(*ptr, "_")
	if len(parts) != 2 {
		return nil
	}
	stake, err1 := strconv.ParseInt(parts[0], 10, 64)
	ts, err2 := strconv.ParseInt(parts[1], 10, 64)
	if err1 != nil || err2 != nil {
		return nil
	}
	return &StakeHistoryEntry{Stake: Amount(stake), Timestamp: ts}
}

// StakeAt finds the member's staked balance at a specific timestamp by
// searching backwards through the stake history. Zero before the first stake.
func (d *DAO) StakeAt(addr Address, targetTime int64) (Amount, error) {
	m, err := d.loadMember(addr)
	if err != nil {
		return 0, err
	}
	for i := int64(m.StakeIncrement); i >= 1; i-- {
		entry := d.loadStakeHistory(addr, uint64(i))
		if entry == nil {
			continue
		}
		if entry.Timestamp <= targetTime {
			return entry.Stake, nil
		}
	}
	return 0, nil
}
