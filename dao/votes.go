package dao

// Vote records the caller's choice on an open proposal. The voting power spent
// is computed at this moment and frozen into the receipt and the tally; later
// stake or reputation changes never touch already-cast votes. One vote per
// member per proposal, enforced by the receipt existence check.
func (d *DAO) Vote(caller Address, proposalID uint64, approve bool) error {
	t, err := d.loadTreasury()
	if err != nil {
		return err
	}
	if err := requireNotPaused(t); err != nil {
		return err
	}
	p, err := d.loadProposal(proposalID)
	if err != nil {
		return err
	}
	if p.Status != StatusOpen {
		return ErrProposalNotOpen
	}
	now := d.now()
	if now > p.VotingEndsAt {
		return ErrVotingEnded
	}
	if ptr := d.st.Get(voteReceiptKey(proposalID, caller)); ptr != nil && *ptr != "" {
		return ErrAlreadyVoted
	}
	m, err := d.loadMember(caller)
	if err != nil {
		return err
	}
	power := d.powerOf(m)
	if power <= 0 {
		return ErrNoVotingPower
	}

	rec := &voteReceipt{Approve: approve, Power: power, VotedAt: now}
	if approve {
		p.YesVotes += power
	} else {
		p.NoVotes += power
	}
	p.VoterCount++
	m.VotesCast++
	m.Reputation += d.params.VoteReputationBonus
	reward := d.params.VoteReward
	d.rewardParticipation(m, t, reward)

	d.st.Set(voteReceiptKey(proposalID, caller), string(encodeVoteReceipt(rec)))
	d.saveProposal(p)
	d.saveMember(m)
	d.saveTreasury(t)
	d.emitVoteCast(caller, proposalID, approve, power, reward, now)
	if d.met != nil {
		d.met.VotesCast.Inc()
	}
	return nil
}

// HasVoted reports whether the member already holds a receipt on the proposal.
func (d *DAO) HasVoted(proposalID uint64, addr Address) (bool, error) {
	if _, err := d.loadProposal(proposalID); err != nil {
		return false, err
	}
	ptr := d.st.Get(voteReceiptKey(proposalID, addr))
	return ptr != nil && *ptr != "", nil
}

// VoteOf returns the frozen choice and power a member spent on a proposal.
type VoteInfo struct {
	Approve bool
	Power   Amount
	VotedAt int64
}

// VoteOf looks up the receipt for a (proposal, voter) pair.
func (d *DAO) VoteOf(proposalID uint64, addr Address) (*VoteInfo, error) {
	if _, err := d.loadProposal(proposalID); err != nil {
		return nil, err
	}
	ptr := d.st.Get(voteReceiptKey(proposalID, addr))
	if ptr == nil || *ptr == "" {
		return nil, ErrMemberNotFound
	}
	rec, err := decodeVoteReceipt([]byte(*ptr))
	if err != nil {
		return nil, err
	}
	return &VoteInfo{Approve: rec.Approve, Power: rec.Power, VotedAt: rec.VotedAt}, nil
}
