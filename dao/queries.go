package dao

// Read-only snapshot surface. Misses come back as NotFound-kind errors, which
// callers should treat as regular results rather than faults; repeated queries
// for the same unknown id answer identically.

// GetProposal returns a snapshot of one proposal.
func (d *DAO) GetProposal(id uint64) (*Proposal, error) {
	return d.loadProposal(id)
}

// Proposals returns every proposal in id order. Ids are dense, so a counter
// scan covers them all; work is proportional to the number of proposals.
func (d *DAO) Proposals() ([]Proposal, error) {
	if _, err := d.loadTreasury(); err != nil {
		return nil, err
	}
	count := d.getCount(ProposalsCount)
	out := make([]Proposal, 0, count)
	for id := uint64(0); id < count; id++ {
		p, err := d.loadProposal(id)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

// GetMember returns a snapshot of one ledger record.
func (d *DAO) GetMember(addr Address) (*Member, error) {
	return d.loadMember(addr)
}

// TreasuryInfo is the aggregate snapshot external clients render.
type TreasuryInfo struct {
	TotalFunds    Amount
	TotalSupply   Amount
	TotalStaked   Amount
	Paused        bool
	Admin         Address
	ProposalCount uint64
	CreatedAt     int64
}

// GetTreasury returns the custodial snapshot plus the proposal counter.
func (d *DAO) GetTreasury() (*TreasuryInfo, error) {
	t, err := d.loadTreasury()
	if err != nil {
		return nil, err
	}
	return &TreasuryInfo{
		TotalFunds:    t.TotalFunds,
		TotalSupply:   t.TotalSupply,
		TotalStaked:   t.TotalStaked,
		Paused:        t.Paused,
		Admin:         t.Admin,
		ProposalCount: d.getCount(ProposalsCount),
		CreatedAt:     t.CreatedAt,
	}, nil
}
