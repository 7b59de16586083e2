package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := objectKey()
		assert.True(t, strings.HasSuffix(key, ".jpeg"))
		assert.NotEmpty(t, strings.TrimSuffix(key, ".jpeg"))
		seen[key] = true
	}

	// Keys carry 64 random bits; collisions across 100 draws would mean the
	// random prefix is not being applied
	assert.Len(t, seen, 100)
}
