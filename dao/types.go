package dao

// Address identifies a member or external recipient. Plain string wrapper so
// callers can bring whatever account scheme their host uses.
type Address string

// String unwraps the address for keys, logs and events.
func (a Address) String() string { return string(a) }

// Amount is a quantity of governance credit or settlement currency in whole
// integer units. All treasury and ledger math stays in int64 on purpose.
type Amount int64

// Category selects the proposal flavor. Funding proposals move settlement
// currency on passage, Governance and Emergency ones only record the outcome.
type Category uint8

const (
	CategoryUnspecified Category = 0
	CategoryFunding     Category = 1
	CategoryGovernance  Category = 2
	CategoryEmergency   Category = 3
)

// String prints the category as lower-case text for events and logs.
func (c Category) String() string {
	switch c {
	case CategoryFunding:
		return "funding"
	case CategoryGovernance:
		return "governance"
	case CategoryEmergency:
		return "emergency"
	default:
		return "unspecified"
	}
}

// ParseCategory maps the text form back to the enum, rejecting anything else.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "funding":
		return CategoryFunding, nil
	case "governance":
		return CategoryGovernance, nil
	case "emergency":
		return CategoryEmergency, nil
	default:
		return CategoryUnspecified, ErrInvalidCategory
	}
}

// movesFunds reports whether execution of a passed proposal in this category
// debits the custodial pool.
func (c Category) movesFunds() bool { return c == CategoryFunding }

// ProposalStatus captures a proposal's lifecycle. Open is the only non-terminal
// state; Funded, Rejected and QuorumNotMet are final.
type ProposalStatus uint8

const (
	StatusUnspecified  ProposalStatus = 0
	StatusOpen         ProposalStatus = 1
	StatusFunded       ProposalStatus = 2
	StatusRejected     ProposalStatus = 3
	StatusQuorumNotMet ProposalStatus = 4
)

// String prints the proposal status as lower-case text for events and logs.
func (ps ProposalStatus) String() string {
	switch ps {
	case StatusOpen:
		return "open"
	case StatusFunded:
		return "funded"
	case StatusRejected:
		return "rejected"
	case StatusQuorumNotMet:
		return "quorum_not_met"
	default:
		return "unspecified"
	}
}

// Member is the per-address ledger record. Created on join, never deleted.
// Balance and Staked are the two halves of the member's governance credit;
// staking moves credit between them one way only.
type Member struct {
	Address          Address
	Balance          Amount
	Staked           Amount
	Earned           Amount
	Reputation       int64
	ProposalsCreated uint64
	VotesCast        uint64
	JoinedAt         int64
	StakeIncrement   uint64
}

// Treasury is the single custodial record for a DAO instance: pooled settlement
// funds, issued token supply, aggregate stake and the admin identity. The
// proposal counter lives next to it in storage (see counters.go) so ids stay
// dense under serial application.
type Treasury struct {
	TotalFunds  Amount
	TotalSupply Amount
	TotalStaked Amount
	Paused      bool
	Admin       Address
	CreatedAt   int64
}

// Proposal is stored per id. Vote tallies are sums of voting power, not head
// counts; individual receipts live under their own keys (votes.go).
type Proposal struct {
	ID           uint64
	Title        string
	Description  string
	Category     Category
	Recipient    Address
	Amount       Amount
	Proposer     Address
	CreatedAt    int64
	VotingEndsAt int64
	ExecutableAt int64
	YesVotes     Amount
	NoVotes      Amount
	VoterCount   uint64
	Status       ProposalStatus
	Executed     bool
}

// CreateProposalArgs bundles the caller-supplied fields for CreateProposal.
type CreateProposalArgs struct {
	Title       string
	Description string
	Category    Category
	Recipient   Address
	Amount      Amount
}

// Payout is the disbursement trace written when a funding proposal executes,
// so external indexers can reconstruct settlement transfers from state alone.
type Payout struct {
	ProposalID uint64
	Recipient  Address
	Amount     Amount
	PaidAt     int64
}

// StakeHistoryEntry is a single stake snapshot in time.
type StakeHistoryEntry struct {
	Stake     Amount
	Timestamp int64
}
