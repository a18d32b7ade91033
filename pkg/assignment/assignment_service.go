package assignment

import (
	"math/rand"
	"sync"

	"recipe-study-backend/domain"
)

type (
	// VersionAssigner places a new participant into one of the three study
	// arms. The randomness source is injected so assignment is reproducible
	// in tests.
	VersionAssigner interface {
		Assign() string
	}

	versionAssigner struct {
		mu  sync.Mutex
		rng *rand.Rand
	}
)

func NewVersionAssigner(source rand.Source) VersionAssigner {
	return &versionAssigner{rng: rand.New(source)}
}

func (a *versionAssigner) Assign() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return domain.Versions[a.rng.Intn(len(domain.Versions))]
}
