package dao

// State is the string KV store every record lives in. The engine assumes a
// single authoritative, serially-applied state behind it: implementations must
// apply writes durably or panic, they never report per-write errors back.
// Values may hold arbitrary bytes (the binary codec output goes in as-is).
type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}
