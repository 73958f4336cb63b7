package dao

import "strings"

// -----------------------------------------------------------------------------
// Proposal lifecycle: Open -> {Funded, Rejected, QuorumNotMet}
// -----------------------------------------------------------------------------

// CreateProposal opens a proposal and returns its id. The caller must hold
// balance+staked at or above the governance threshold; Funding proposals are
// additionally capped by the current custodial balance. Ids come off the dense
// counter and are never reused.
func (d *DAO) CreateProposal(caller Address, args CreateProposalArgs) (uint64, error) {
	t, err := d.loadTreasury()
	if err != nil {
		return 0, err
	}
	if err := requireNotPaused(t); err != nil {
		return 0, err
	}
	if strings.TrimSpace(args.Title) == "" {
		return 0, ErrInvalidTitle
	}
	switch args.Category {
	case CategoryFunding, CategoryGovernance, CategoryEmergency:
	default:
		return 0, ErrInvalidCategory
	}
	if args.Amount < d.params.MinProposalAmount {
		return 0, ErrInvalidAmount
	}
	if args.Category.movesFunds() && args.Amount > t.TotalFunds {
		return 0, ErrInsufficientFunds
	}
	proposer, err := d.loadMember(caller)
	if err != nil {
		return 0, err
	}
	if proposer.Balance+proposer.Staked < d.params.GovernanceThreshold {
		return 0, ErrInsufficientTokens
	}

	now := d.now()
	id := d.getCount(ProposalsCount)
	window := int64(d.params.votingWindow(args.Category).Seconds())
	delay := int64(d.params.ExecutionDelay.Seconds())
	p := &Proposal{
		ID:           id,
		Title:        args.Title,
		Description:  args.Description,
		Category:     args.Category,
		Recipient:    args.Recipient,
		Amount:       args.Amount,
		Proposer:     caller,
		CreatedAt:    now,
		VotingEndsAt: now + window,
		ExecutableAt: now + window + delay,
		Status:       StatusOpen,
	}
	proposer.ProposalsCreated++
	proposer.Reputation += d.params.ProposalReputationBonus

	d.saveProposal(p)
	d.saveMember(proposer)
	d.setCount(ProposalsCount, id+1)
	d.emitProposalCreated(p)
	if d.met != nil {
		d.met.ProposalsCreated.Inc()
	}
	return id, nil
}

// Execute resolves an open proposal once its execution delay has elapsed.
// Quorum gate first: total cast power below totalStaked*quorumPercent/100
// closes the proposal as QuorumNotMet with no funds moved. Past the gate a
// strict yes>no majority passes; a tie rejects. Funding passage disburses
// through the vault, and a shortfall at that moment aborts the whole call
// leaving the proposal open, so it can be retried after a deposit.
func (d *DAO) Execute(caller Address, proposalID uint64) (ProposalStatus, error) {
	t, err := d.loadTreasury()
	if err != nil {
		return StatusUnspecified, err
	}
	if err := requireNotPaused(t); err != nil {
		return StatusUnspecified, err
	}
	p, err := d.loadProposal(proposalID)
	if err != nil {
		return StatusUnspecified, err
	}
	if p.Executed {
		return StatusUnspecified, ErrProposalAlreadyExecuted
	}
	if p.Status != StatusOpen {
		return StatusUnspecified, ErrProposalNotOpen
	}
	now := d.now()
	if now < p.ExecutableAt {
		return StatusUnspecified, ErrExecutionNotReady
	}

	totalVotes := p.YesVotes + p.NoVotes
	required := quorumRequired(t.TotalStaked, d.params.QuorumPercent)

	var moved Amount
	switch {
	case totalVotes < required:
		p.Status = StatusQuorumNotMet
	case p.YesVotes > p.NoVotes:
		if p.Category.movesFunds() {
			if err := d.openVault().disburse(t, p, now); err != nil {
				return StatusUnspecified, err
			}
			moved = p.Amount
		}
		// non-funding categories resolve as funded outcomes too, just with a
		// zero amount on the event
		p.Status = StatusFunded
	default:
		// yes == no resolves to rejected, passage needs a strict majority
		p.Status = StatusRejected
	}
	p.Executed = true

	d.saveProposal(p)
	d.saveTreasury(t)
	d.emitProposalExecuted(caller, p, moved, now)
	if d.met != nil {
		d.met.ProposalsExecuted.WithLabelValues(p.Status.String()).Inc()
		if moved > 0 {
			d.met.FundsDisbursed.Add(float64(moved))
		}
	}
	d.syncGauges(t)
	return p.Status, nil
}
