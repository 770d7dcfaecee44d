// Package testutils provides deterministic generators and fixture builders
// for slashkit testing. These utilities ensure consistent test output while
// maintaining production format compatibility.
package testutils

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

var (
	// Thread-safe counter for deterministic ID generation
	idCounter uint64
	idMutex   sync.Mutex

	deterministic bool
	modeMutex     sync.Mutex
)

// SetDeterministic toggles deterministic ID generation. Tests that assert on
// generated IDs should enable it; the default is random production-format IDs.
func SetDeterministic(enabled bool) {
	modeMutex.Lock()
	defer modeMutex.Unlock()
	deterministic = enabled
	if enabled {
		idMutex.Lock()
		idCounter = 0
		idMutex.Unlock()
	}
}

// GenerateEntityID generates an opaque entity ID. In deterministic mode it
// returns incrementing IDs in the format 100000000000000001,
// 100000000000000002, etc., matching the width of production snowflakes.
// Otherwise it returns a random UUID.
func GenerateEntityID() string {
	modeMutex.Lock()
	det := deterministic
	modeMutex.Unlock()

	if det {
		idMutex.Lock()
		defer idMutex.Unlock()
		idCounter++
		return fmt.Sprintf("1%017d", idCounter)
	}
	return uuid.New().String()
}
