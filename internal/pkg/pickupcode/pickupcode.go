// Package pickupcode issues the one-time numeric codes handed to guardians
// at check-in.
package pickupcode

import (
	"math/rand"
	"sync"
	"time"

	"github.com/lic-events/vbs-api/internal/domain"
)

// Issuer draws uniform 5-digit codes. Codes carry no cross-participant
// uniqueness guarantee; they are validated per participant.
type Issuer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewIssuer() *Issuer {
	return &Issuer{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (i *Issuer) Issue() int {
	i.mu.Lock()
	defer i.mu.Unlock()

	return domain.PickupCodeMin + i.rng.Intn(domain.PickupCodeMax-domain.PickupCodeMin+1)
}
