package dao

import "strconv"

// ProposalsCount holds an integer counter for proposals (used for generating
// dense, never-reused ids).
const ProposalsCount = "count:props"

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func (d *DAO) getCount(key string) uint64 {
	ptr := d.st.Get(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings.
func (d *DAO) setCount(key string, n uint64) {
	d.st.Set(key, strconv.FormatUint(n, 10))
}
