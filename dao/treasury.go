package dao

// -----------------------------------------------------------------------------
// Treasury pool operations
// -----------------------------------------------------------------------------

// Deposit moves settlement currency from the caller's external holdings into
// custody. Open contribution: any identity may deposit, membership not needed.
func (d *DAO) Deposit(caller Address, amount Amount) error {
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
	now := d.now()
	t.TotalFunds += amount
	d.saveTreasury(t)
	d.emitFundsDeposited(caller, amount, t.TotalFunds, now)
	if d.met != nil {
		d.met.FundsDeposited.Add(float64(amount))
	}
	d.syncGauges(t)
	return nil
}

// Pause halts every mutating operation until Unpause. Admin only.
func (d *DAO) Pause(caller Address) error {
	return d.setPaused(caller, true)
}

// Unpause re-enables mutating operations. Admin only.
func (d *DAO) Unpause(caller Address) error {
	return d.setPaused(caller, false)
}

func (d *DAO) setPaused(caller Address, paused bool) error {
	t, err := d.loadTreasury()
	if err != nil {
		return err
	}
	if err := requireAdmin(t, caller); err != nil {
		return err
	}
	now := d.now()
	t.Paused = paused
	d.saveTreasury(t)
	d.emitPauseToggled(caller, paused, now)
	return nil
}

// -----------------------------------------------------------------------------
// Custody capability
// -----------------------------------------------------------------------------

// vault is the internal capability required to move settlement currency out of
// custody. Unexported on purpose: only the proposal execution path can obtain
// one, which keeps the custody discipline a type-level property instead of a
// convention.
type vault struct {
	d *DAO
}

// openVault is called exclusively from Execute.
func (d *DAO) openVault() vault { return vault{d: d} }

// disburse debits the pool and writes the payout trace. Re-derives eligibility
// from current state: a shortfall at execution time fails the whole call, no
// partial transfer ever happens.
func (v vault) disburse(t *Treasury, p *Proposal, at int64) error {
	if p.Amount > t.TotalFunds {
		return ErrInsufficientFunds
	}
	t.TotalFunds -= p.Amount
	pay := &Payout{
		ProposalID: p.ID,
		Recipient:  p.Recipient,
		Amount:     p.Amount,
		PaidAt:     at,
	}
	v.d.st.Set(payoutKey(p.ID), string(EncodePayout(pay)))
	return nil
}

// PayoutFor returns the disbursement trace of an executed funding proposal.
func (d *DAO) PayoutFor(proposalID uint64) (*Payout, error) {
	ptr := d.st.Get(payoutKey(proposalID))
	if ptr == nil || *ptr == "" {
		return nil, ErrProposalNotFound
	}
	return DecodePayout([]byte(*ptr))
}
