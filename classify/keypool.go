package classify

import "sync"

// Credential is one API key for the external classification endpoint.
type Credential struct {
	Key string
}

// KeyPool rotates a fixed, ordered set of credentials round-robin.
// A credential that failed is handed out again after one full rotation;
// the pool does no health tracking.
type KeyPool struct {
	mu     sync.Mutex
	creds  []Credential
	cursor int
}

// NewKeyPool builds a pool from the configured keys, ignoring empty
// entries. Returns ErrNoCredentials when no usable key remains.
func NewKeyPool(keys []string) (*KeyPool, error) {
	creds := make([]Credential, 0, len(keys))
	for _, key := range keys {
		if key == "" {
			continue
		}
		creds = append(creds, Credential{Key: key})
	}
	if len(creds) == 0 {
		return nil, ErrNoCredentials
	}
	return &KeyPool{creds: creds}, nil
}

// Next returns the credential at the cursor and advances it modulo the
// pool size.
func (p *KeyPool) Next() Credential {
	p.mu.Lock()
	defer p.mu.Unlock()
	cred := p.creds[p.cursor]
	p.cursor = (p.cursor + 1) % len(p.creds)
	return cred
}

// Size returns the number of credentials in the pool.
func (p *KeyPool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.creds)
}
