// Package signer produces detached signatures over generated recipes
// so the deployment pipeline can verify their origin before packaging.
package signer

// Signer interface for signing recipe documents
type Signer interface {
	// SignDetached creates an armored detached signature (for <name>.xml.asc)
	SignDetached(data []byte) ([]byte, error)

	// GetPublicKey returns the public key
	GetPublicKey() ([]byte, error)
}
