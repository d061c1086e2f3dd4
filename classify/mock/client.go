// Package mock provides test doubles for the classify package.
package mock

import (
	"context"
	"sync"

	"github.com/guillermop2002/Patch-Boe/classify"
)

// Classifier is a configurable classify.Classifier double.
type Classifier struct {
	mu        sync.Mutex
	callCount int

	// ClassifyFunc is invoked by Classify when set; otherwise Classify
	// returns empty results.
	ClassifyFunc func(ctx context.Context, prompt string, cred classify.Credential) ([]classify.RawItem, error)
}

var _ classify.Classifier = (*Classifier)(nil)

func (m *Classifier) Classify(ctx context.Context, prompt string, cred classify.Credential) ([]classify.RawItem, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, prompt, cred)
	}
	return nil, nil
}

// CallCount reports how many times Classify was invoked.
func (m *Classifier) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
