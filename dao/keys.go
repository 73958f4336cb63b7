package dao

// Storage key prefixes. Single-byte prefixes plus fixed-width ids keep keys
// compact and related records contiguous in ordered stores.
const (
	// kTreasury stores the single encoded Treasury record.
	kTreasury byte = 0x01
	// kMember houses encoded Member structs keyed by address.
	kMember byte = 0x02
	// kProposal contains encoded Proposal records.
	kProposal byte = 0x10
	// kVoteReceipt stores one receipt per (proposal, voter) pair.
	kVoteReceipt byte = 0x20
	// kStakeHistory stores historical stake snapshots: {stake}_{timestamp}.
	kStakeHistory byte = 0x22
	// kPayout stores the disbursement trace for executed funding proposals.
	kPayout byte = 0x30
)

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// treasuryKey is constant, there is exactly one treasury per state.
func treasuryKey() string {
	return string([]byte{kTreasury})
}

// memberKey mixes the prefix with address bytes to avoid nested maps in storage.
func memberKey(addr Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kMember)
	buf = append(buf, addrStr...)
	return string(buf)
}

// proposalKey encodes id under the 0x10 prefix keeping metadata lumps contiguous.
func proposalKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProposal
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// voteReceiptKey generates a unique storage key for a vote based on the
// proposal ID and the voter's address.
func voteReceiptKey(id uint64, voter Address) string {
	addr := voter.String()
	buf := make([]byte, 0, 1+8+len(addr))
	buf = append(buf, kVoteReceipt)
	buf = packU64LE(id, buf)
	buf = append(buf, addr...)
	return string(buf)
}

// stakeHistoryKey stores a member's stake history entry at a specific increment.
// Key format: kStakeHistory|address|increment
func stakeHistoryKey(addr Address, increment uint64) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr)+8)
	buf = append(buf, kStakeHistory)
	buf = append(buf, addrStr...)
	buf = packU64LE(increment, buf)
	return string(buf)
}

// payoutKey stores the payout trace next to its proposal id.
func payoutKey(proposalID uint64) string {
	var buf [9]byte
	buf[0] = kPayout
	packU64LEInline(proposalID, buf[1:])
	return string(buf[:])
}
