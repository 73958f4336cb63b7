package dao

import (
	"strconv"

	"agora_dao/audit"
)

// Audit event types with their short pipe codes. Codes keep log lines terse;
// the long type names the NATS subjects.
const (
	EvInitialized       = "initialized"
	EvMemberJoined      = "member_joined"
	EvFundsDeposited    = "funds_deposited"
	EvTokensStaked      = "tokens_staked"
	EvTokensTransferred = "tokens_transferred"
	EvTokensDistributed = "tokens_distributed"
	EvProposalCreated   = "proposal_created"
	EvVoteCast          = "vote_cast"
	EvProposalExecuted  = "proposal_executed"
	EvPaused            = "paused"
	EvUnpaused          = "unpaused"
)

func fmtAmount(a Amount) string { return strconv.FormatInt(int64(a), 10) }
func fmtID(id uint64) string    { return strconv.FormatUint(id, 10) }

// emitInitialized records genesis so indexers can anchor the trail.
func (d *DAO) emitInitialized(admin Address, seed Amount, at int64) {
	d.emit(audit.New(EvInitialized, "init", admin.String(), at, map[string]string{
		"seed": fmtAmount(seed),
	}))
}

// emitMemberJoined writes a tiny "mj" line so watchers know someone fresh just joined.
func (d *DAO) emitMemberJoined(addr Address, welcome Amount, at int64) {
	d.emit(audit.New(EvMemberJoined, "mj", addr.String(), at, map[string]string{
		"welcome": fmtAmount(welcome),
	}))
}

// emitFundsDeposited tells indexing bots the custody pool grew.
func (d *DAO) emitFundsDeposited(caller Address, amount, total Amount, at int64) {
	d.emit(audit.New(EvFundsDeposited, "fd", caller.String(), at, map[string]string{
		"am":    fmtAmount(amount),
		"total": fmtAmount(total),
	}))
}

// emitTokensStaked traces the balance->stake move plus the reputation earned.
func (d *DAO) emitTokensStaked(caller Address, amount Amount, repGain int64, at int64) {
	d.emit(audit.New(EvTokensStaked, "st", caller.String(), at, map[string]string{
		"am":  fmtAmount(amount),
		"rep": strconv.FormatInt(repGain, 10),
	}))
}

// emitTokensTransferred records both sides of a credit move in one line.
func (d *DAO) emitTokensTransferred(from, to Address, amount Amount, at int64) {
	d.emit(audit.New(EvTokensTransferred, "tt", from.String(), at, map[string]string{
		"to": to.String(),
		"am": fmtAmount(amount),
	}))
}

// emitTokensDistributed covers admin grants, reason included for auditors.
func (d *DAO) emitTokensDistributed(admin, to Address, amount Amount, reason string, at int64) {
	d.emit(audit.New(EvTokensDistributed, "ad", admin.String(), at, map[string]string{
		"to":     to.String(),
		"am":     fmtAmount(amount),
		"reason": reason,
	}))
}

// emitProposalCreated keeps observers updated with a short pc line for every new idea.
func (d *DAO) emitProposalCreated(p *Proposal) {
	d.emit(audit.New(EvProposalCreated, "pc", p.Proposer.String(), p.CreatedAt, map[string]string{
		"id":    fmtID(p.ID),
		"cat":   p.Category.String(),
		"am":    fmtAmount(p.Amount),
		"ends":  strconv.FormatInt(p.VotingEndsAt, 10),
		"ready": strconv.FormatInt(p.ExecutableAt, 10),
	}))
}

// emitVoteCast includes the frozen power and the reward so tallies can be
// replayed from the trail alone.
func (d *DAO) emitVoteCast(voter Address, id uint64, approve bool, power, reward Amount, at int64) {
	d.emit(audit.New(EvVoteCast, "v", voter.String(), at, map[string]string{
		"id":     fmtID(id),
		"choice": strconv.FormatBool(approve),
		"w":      fmtAmount(power),
		"reward": fmtAmount(reward),
	}))
}

// emitProposalExecuted is the terminal line for a proposal; amount is zero
// unless settlement currency actually moved.
func (d *DAO) emitProposalExecuted(caller Address, p *Proposal, amount Amount, at int64) {
	d.emit(audit.New(EvProposalExecuted, "px", caller.String(), at, map[string]string{
		"id":     fmtID(p.ID),
		"result": p.Status.String(),
		"am":     fmtAmount(amount),
		"yes":    fmtAmount(p.YesVotes),
		"no":     fmtAmount(p.NoVotes),
	}))
}

// emitPauseToggled spells out the resulting state so auditors can track flips.
func (d *DAO) emitPauseToggled(admin Address, paused bool, at int64) {
	typ, code := EvUnpaused, "pu"
	if paused {
		typ, code = EvPaused, "pp"
	}
	d.emit(audit.New(typ, code, admin.String(), at, map[string]string{
		"paused": strconv.FormatBool(paused),
	}))
}
