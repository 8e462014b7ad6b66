package cache

// ScopedKeyer wraps a Keyer with a prefix so that several deployments can
// share one Redis instance without colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "ledwire:staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// PlanKey generates a prefixed plan key.
func (k *ScopedKeyer) PlanKey(opts PlanKeyOpts) string {
	return k.prefix + k.inner.PlanKey(opts)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(planHash, opts)
}
