package models

// VaultRecord is the identity of a vault as it travels between the network,
// the cache and the vault itself: who it belongs to, the key derivation work
// factor, and the raw blob exactly as received.
type VaultRecord struct {
	Username   string
	Iterations int
	Raw        []byte
}
