// SPDX-License-Identifier: MIT

package mesh

import "fmt"

// DefaultMaxFaceDegree bounds face walks when no WithMaxFaceDegree is given.
const DefaultMaxFaceDegree = 1024

// Option configures Build and Restore.
type Option func(*config)

type config struct {
	maxFaceDegree int  // bound for next-walks
	checkRefs     bool // Lookup* also checks that targets are live
}

func defaultConfig() config {
	return config{maxFaceDegree: DefaultMaxFaceDegree}
}

func resolve(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMaxFaceDegree sets the longest face accepted by Build and the bound
// used by face walks and VerifyInvariants. Panics if n < 3.
func WithMaxFaceDegree(n int) Option {
	if n < 3 {
		panic(fmt.Sprintf("mesh: WithMaxFaceDegree(%d): need n >= 3", n))
	}

	return func(c *config) { c.maxFaceDegree = n }
}

// WithReferenceChecks makes every Lookup* accessor also verify that the
// stored target is live, reporting ErrDanglingReference otherwise.
func WithReferenceChecks() Option {
	return func(c *config) { c.checkRefs = true }
}

// MaxFaceDegree reports the configured face-walk bound.
func (m *Mesh[V, E, F]) MaxFaceDegree() int { return m.cfg.maxFaceDegree }
