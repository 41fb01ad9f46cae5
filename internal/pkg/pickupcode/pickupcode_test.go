package pickupcode

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lic-events/vbs-api/internal/domain"
)

func TestIssuer_Issue(t *testing.T) {
	issuer := NewIssuer()

	for i := 0; i < 1000; i++ {
		code := issuer.Issue()
		assert.GreaterOrEqual(t, code, domain.PickupCodeMin)
		assert.LessOrEqual(t, code, domain.PickupCodeMax)
	}
}

func TestIssuer_IssueConcurrent(t *testing.T) {
	issuer := NewIssuer()

	var wg sync.WaitGroup
	codes := make([]int, 100)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			codes[i] = issuer.Issue()
		}(i)
	}
	wg.Wait()

	for _, code := range codes {
		assert.GreaterOrEqual(t, code, domain.PickupCodeMin)
		assert.LessOrEqual(t, code, domain.PickupCodeMax)
	}
}
