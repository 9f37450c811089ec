package service

import (
	"fmt"
	"math/rand"
)

const pinSpace = 10000 // 0000-9999

// GeneratePin draws an unused 4-digit PIN. It is a pure function of the
// existing-PIN set and the random source so tests can inject a seeded rng.
func GeneratePin(existing map[string]struct{}, rng *rand.Rand) (string, error) {
	if len(existing) >= pinSpace {
		return "", ErrPinExhausted
	}
	for {
		pin := fmt.Sprintf("%04d", rng.Intn(pinSpace))
		if _, taken := existing[pin]; !taken {
			return pin, nil
		}
	}
}
