package dao

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Fallback tunables. DefaultParams mirrors these; deployments override single
// values via DAO_* environment variables (ParamsFromEnv).
const (
	FallbackInitialSupply      = 1_000_000
	FallbackWelcomeBalance     = 100
	FallbackBaselineReputation = 10
	// FallbackGovernanceThreshold is the balance+staked minimum for proposing.
	FallbackGovernanceThreshold = 1000
	FallbackMinProposalAmount   = 10
	FallbackQuorumPercent       = 20
	FallbackVotingPeriod        = 7 * 24 * time.Hour
	// FallbackEmergencyDivisor shortens the voting window for Emergency
	// proposals: window = VotingPeriod / EmergencyDivisor.
	FallbackEmergencyDivisor        = 7
	FallbackExecutionDelay          = 24 * time.Hour
	FallbackVoteReward              = 10
	FallbackProposalReputationBonus = 5
	// FallbackStakeReputationDivisor - staking earns amount/divisor reputation.
	FallbackStakeReputationDivisor = 100
	// FallbackPowerReputationDivisor - power = staked + reputation/divisor.
	FallbackPowerReputationDivisor = 10
	FallbackVoteReputationBonus    = 1
)

// Params are the per-instance tunables. Fixed for the lifetime of a DAO handle;
// there is no on-chain parameter-change path in this core.
type Params struct {
	InitialSupply           Amount        `env:"DAO_INITIAL_SUPPLY"`
	WelcomeBalance          Amount        `env:"DAO_WELCOME_BALANCE"`
	BaselineReputation      int64         `env:"DAO_BASELINE_REPUTATION"`
	GovernanceThreshold     Amount        `env:"DAO_GOVERNANCE_THRESHOLD"`
	MinProposalAmount       Amount        `env:"DAO_MIN_PROPOSAL_AMOUNT"`
	QuorumPercent           int64         `env:"DAO_QUORUM_PERCENT"`
	VotingPeriod            time.Duration `env:"DAO_VOTING_PERIOD"`
	EmergencyDivisor        int64         `env:"DAO_EMERGENCY_DIVISOR"`
	ExecutionDelay          time.Duration `env:"DAO_EXECUTION_DELAY"`
	VoteReward              Amount        `env:"DAO_VOTE_REWARD"`
	ProposalReputationBonus int64         `env:"DAO_PROPOSAL_REPUTATION_BONUS"`
	VoteReputationBonus     int64         `env:"DAO_VOTE_REPUTATION_BONUS"`
	StakeReputationDivisor  int64         `env:"DAO_STAKE_REPUTATION_DIVISOR"`
	PowerReputationDivisor  int64         `env:"DAO_POWER_REPUTATION_DIVISOR"`
}

// DefaultParams returns the fallback parameter set.
func DefaultParams() Params {
	return Params{
		InitialSupply:           FallbackInitialSupply,
		WelcomeBalance:          FallbackWelcomeBalance,
		BaselineReputation:      FallbackBaselineReputation,
		GovernanceThreshold:     FallbackGovernanceThreshold,
		MinProposalAmount:       FallbackMinProposalAmount,
		QuorumPercent:           FallbackQuorumPercent,
		VotingPeriod:            FallbackVotingPeriod,
		EmergencyDivisor:        FallbackEmergencyDivisor,
		ExecutionDelay:          FallbackExecutionDelay,
		VoteReward:              FallbackVoteReward,
		ProposalReputationBonus: FallbackProposalReputationBonus,
		VoteReputationBonus:     FallbackVoteReputationBonus,
		StakeReputationDivisor:  FallbackStakeReputationDivisor,
		PowerReputationDivisor:  FallbackPowerReputationDivisor,
	}
}

// ParamsFromEnv starts from defaults and layers DAO_* environment overrides on
// top, then validates the result.
func ParamsFromEnv() (Params, error) {
	p := DefaultParams()
	if err := env.Parse(&p); err != nil {
		return Params{}, fmt.Errorf("parse dao params from env: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate rejects parameter sets the engine math cannot run on.
func (p Params) Validate() error {
	if p.InitialSupply <= 0 {
		return fmt.Errorf("initial supply must be positive, got %d", p.InitialSupply)
	}
	if p.WelcomeBalance < 0 {
		return fmt.Errorf("welcome balance must not be negative, got %d", p.WelcomeBalance)
	}
	if p.QuorumPercent < 0 || p.QuorumPercent > 100 {
		return fmt.Errorf("quorum percent must be within [0,100], got %d", p.QuorumPercent)
	}
	if p.VotingPeriod <= 0 {
		return fmt.Errorf("voting period must be positive, got %s", p.VotingPeriod)
	}
	if p.EmergencyDivisor <= 0 {
		return fmt.Errorf("emergency divisor must be positive, got %d", p.EmergencyDivisor)
	}
	if p.ExecutionDelay < 0 {
		return fmt.Errorf("execution delay must not be negative, got %s", p.ExecutionDelay)
	}
	if p.StakeReputationDivisor <= 0 || p.PowerReputationDivisor <= 0 {
		return fmt.Errorf("reputation divisors must be positive")
	}
	return nil
}

// votingWindow returns the category-dependent voting duration.
func (p Params) votingWindow(c Category) time.Duration {
	if c == CategoryEmergency {
		return p.VotingPeriod / time.Duration(p.EmergencyDivisor)
	}
	return p.VotingPeriod
}
