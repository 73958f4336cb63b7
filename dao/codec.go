package dao

import (
	"bytes"
	"encoding/binary"
	"errors"
)

// Deterministic binary codec for stored records. Fixed field order, big endian
// numbers, varint lengths. Decoders return errors instead of panicking so a
// corrupted blob surfaces as a fault at the call site.

type binWriter struct {
	buf bytes.Buffer
}

// newWriter spins up a fresh writer so we dont leak old bytes between encodes.
func newWriter() *binWriter { return &binWriter{} }

// bytes returns the accumulated buffer, tiny helper but keeps code tidy.
func (w *binWriter) bytes() []byte { return w.buf.Bytes() }

// writeBool squashes bools into a single byte flag for deterministic payloads.
func (w *binWriter) writeBool(v bool) {
	if v {
		w.buf.WriteByte(1)
	} else {
		w.buf.WriteByte(0)
	}
}

// writeByte stores raw enum tags.
func (w *binWriter) writeByte(v byte) {
	w.buf.WriteByte(v)
}

// writeUint64 writes big endian numbers so tooling can read them without guessing.
func (w *binWriter) writeUint64(v uint64) {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// writeInt64 reuses the uint routine since casting keeps the sign bits intact.
func (w *binWriter) writeInt64(v int64) {
	w.writeUint64(uint64(v))
}

// writeVarUint uses varints to keep counts and lens compact.
func (w *binWriter) writeVarUint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf.Write(tmp[:n])
}

// writeAmount keeps amount handling consistent via a single call site.
func (w *binWriter) writeAmount(v Amount) {
	w.writeInt64(int64(v))
}

// writeString prefixes its length then dumps UTF-8 directly.
func (w *binWriter) writeString(s string) {
	w.writeVarUint(uint64(len(s)))
	w.buf.WriteString(s)
}

type binReader struct {
	r *bytes.Reader
}

func newReader(data []byte) *binReader {
	return &binReader{r: bytes.NewReader(data)}
}

func (r *binReader) readBool() (bool, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

func (r *binReader) readByte() (byte, error) {
	return r.r.ReadByte()
}

func (r *binReader) readUint64() (uint64, error) {
	var b [8]byte
	if _, err := r.r.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

func (r *binReader) readInt64() (int64, error) {
	v, err := r.readUint64()
	return int64(v), err
}

func (r *binReader) readVarUint() (uint64, error) {
	return binary.ReadUvarint(r.r)
}

func (r *binReader) readAmount() (Amount, error) {
	v, err := r.readInt64()
	return Amount(v), err
}

func (r *binReader) readString() (string, error) {
	n, err := r.readVarUint()
	if err != nil {
		return "", err
	}
	if n > uint64(r.r.Len()) {
		return "", errors.New("string length exceeds remaining data")
	}
	buf := make([]byte, n)
	if _, err := r.r.Read(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// -----------------------------------------------------------------------------
// Member
// -----------------------------------------------------------------------------

// EncodeMember serializes a ledger record for storage.
func EncodeMember(m *Member) []byte {
	w := newWriter()
	w.writeString(m.Address.String())
	w.writeAmount(m.Balance)
	w.writeAmount(m.Staked)
	w.writeAmount(m.Earned)
	w.writeInt64(m.Reputation)
	w.writeVarUint(m.ProposalsCreated)
	w.writeVarUint(m.VotesCast)
	w.writeInt64(m.JoinedAt)
	w.writeVarUint(m.StakeIncrement)
	return w.bytes()
}

// DecodeMember parses a stored ledger record.
func DecodeMember(data []byte) (*Member, error) {
	r := newReader(data)
	var m Member
	var err error
	var addr string
	if addr, err = r.readString(); err != nil {
		return nil, err
	}
	m.Address = Address(addr)
	if m.Balance, err = r.readAmount(); err != nil {
		return nil, err
	}
	if m.Staked, err = r.readAmount(); err != nil {
		return nil, err
	}
	if m.Earned, err = r.readAmount(); err != nil {
		return nil, err
	}
	if m.Reputation, err = r.readInt64(); err != nil {
		return nil, err
	}
	if m.ProposalsCreated, err = r.readVarUint(); err != nil {
		return nil, err
	}
	if m.VotesCast, err = r.readVarUint(); err != nil {
		return nil, err
	}
	if m.JoinedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if m.StakeIncrement, err = r.readVarUint(); err != nil {
		return nil, err
	}
	return &m, nil
}

// -----------------------------------------------------------------------------
// Treasury
// -----------------------------------------------------------------------------

// EncodeTreasury serializes the custodial record.
func EncodeTreasury(t *Treasury) []byte {
	w := newWriter()
	w.writeAmount(t.TotalFunds)
	w.writeAmount(t.TotalSupply)
	w.writeAmount(t.TotalStaked)
	w.writeBool(t.Paused)
	w.writeString(t.Admin.String())
	w.writeInt64(t.CreatedAt)
	return w.bytes()
}

// DecodeTreasury parses the stored custodial record.
func DecodeTreasury(data []byte) (*Treasury, error) {
	r := newReader(data)
	var t Treasury
	var err error
	if t.TotalFunds, err = r.readAmount(); err != nil {
		return nil, err
	}
	if t.TotalSupply, err = r.readAmount(); err != nil {
		return nil, err
	}
	if t.TotalStaked, err = r.readAmount(); err != nil {
		return nil, err
	}
	if t.Paused, err = r.readBool(); err != nil {
		return nil, err
	}
	var admin string
	if admin, err = r.readString(); err != nil {
		return nil, err
	}
	t.Admin = Address(admin)
	if t.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return &t, nil
}

// -----------------------------------------------------------------------------
// Proposal
// -----------------------------------------------------------------------------

// EncodeProposal serializes a proposal record.
func EncodeProposal(p *Proposal) []byte {
	w := newWriter()
	w.writeVarUint(p.ID)
	w.writeString(p.Title)
	w.writeString(p.Description)
	w.writeByte(byte(p.Category))
	w.writeString(p.Recipient.String())
	w.writeAmount(p.Amount)
	w.writeString(p.Proposer.String())
	w.writeInt64(p.CreatedAt)
	w.writeInt64(p.VotingEndsAt)
	w.writeInt64(p.ExecutableAt)
	w.writeAmount(p.YesVotes)
	w.writeAmount(p.NoVotes)
	w.writeVarUint(p.VoterCount)
	w.writeByte(byte(p.Status))
	w.writeBool(p.Executed)
	return w.bytes()
}

// DecodeProposal parses a stored proposal record.
func DecodeProposal(data []byte) (*Proposal, error) {
	r := newReader(data)
	var p Proposal
	var err error
	if p.ID, err = r.readVarUint(); err != nil {
		return nil, err
	}
	if p.Title, err = r.readString(); err != nil {
		return nil, err
	}
	if p.Description, err = r.readString(); err != nil {
		return nil, err
	}
	var tag byte
	if tag, err = r.readByte(); err != nil {
		return nil, err
	}
	p.Category = Category(tag)
	var recipient string
	if recipient, err = r.readString(); err != nil {
		return nil, err
	}
	p.Recipient = Address(recipient)
	if p.Amount, err = r.readAmount(); err != nil {
		return nil, err
	}
	var proposer string
	if proposer, err = r.readString(); err != nil {
		return nil, err
	}
	p.Proposer = Address(proposer)
	if p.CreatedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.VotingEndsAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.ExecutableAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	if p.YesVotes, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.NoVotes, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.VoterCount, err = r.readVarUint(); err != nil {
		return nil, err
	}
	if tag, err = r.readByte(); err != nil {
		return nil, err
	}
	p.Status = ProposalStatus(tag)
	if p.Executed, err = r.readBool(); err != nil {
		return nil, err
	}
	return &p, nil
}

// -----------------------------------------------------------------------------
// Vote receipts
// -----------------------------------------------------------------------------

// voteReceipt freezes the power a member spent on a proposal at cast time.
type voteReceipt struct {
	Approve bool
	Power   Amount
	VotedAt int64
}

func encodeVoteReceipt(rec *voteReceipt) []byte {
	w := newWriter()
	w.writeBool(rec.Approve)
	w.writeAmount(rec.Power)
	w.writeInt64(rec.VotedAt)
	return w.bytes()
}

func decodeVoteReceipt(data []byte) (*voteReceipt, error) {
	r := newReader(data)
	var rec voteReceipt
	var err error
	if rec.Approve, err = r.readBool(); err != nil {
		return nil, err
	}
	if rec.Power, err = r.readAmount(); err != nil {
		return nil, err
	}
	if rec.VotedAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// -----------------------------------------------------------------------------
// Payouts
// -----------------------------------------------------------------------------

// EncodePayout serializes a disbursement trace.
func EncodePayout(p *Payout) []byte {
	w := newWriter()
	w.writeVarUint(p.ProposalID)
	w.writeString(p.Recipient.String())
	w.writeAmount(p.Amount)
	w.writeInt64(p.PaidAt)
	return w.bytes()
}

// DecodePayout parses a stored disbursement trace.
func DecodePayout(data []byte) (*Payout, error) {
	r := newReader(data)
	var p Payout
	var err error
	if p.ProposalID, err = r.readVarUint(); err != nil {
		return nil, err
	}
	var recipient string
	if recipient, err = r.readString(); err != nil {
		return nil, err
	}
	p.Recipient = Address(recipient)
	if p.Amount, err = r.readAmount(); err != nil {
		return nil, err
	}
	if p.PaidAt, err = r.readInt64(); err != nil {
		return nil, err
	}
	return &p, nil
}
