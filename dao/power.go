package dao

// powerOf derives a member's voting weight from the staked balance plus a
// reputation bonus: staked + floor(reputation / divisor). Pure over the record;
// recomputed on demand, never persisted outside vote receipts.
func (d *DAO) powerOf(m *Member) Amount {
	return m.Staked + Amount(m.Reputation/d.params.PowerReputationDivisor)
}

// VotingPower is the read-only query form of the calculator.
func (d *DAO) VotingPower(addr Address) (Amount, error) {
	m, err := d.loadMember(addr)
	if err != nil {
		return 0, err
	}
	return d.powerOf(m), nil
}

// QuorumRequired reports the minimum total cast power for the current stake
// supply: totalStaked * quorumPercent / 100, integer floor.
func (d *DAO) QuorumRequired() (Amount, error) {
	t, err := d.loadTreasury()
	if err != nil {
		return 0, err
	}
	return quorumRequired(t.TotalStaked, d.params.QuorumPercent), nil
}

func quorumRequired(totalStaked Amount, percent int64) Amount {
	return totalStaked * Amount(percent) / 100
}
