package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordService(t *testing.T) {
	svc, err := NewPasswordService()
	require.NoError(t, err)

	t.Run("HashAndCompare", func(t *testing.T) {
		hash, err := svc.Hash("Sup3r-secret!")
		require.NoError(t, err)
		assert.NotEqual(t, "Sup3r-secret!", hash)

		assert.True(t, svc.Compare("Sup3r-secret!", hash))
		assert.False(t, svc.Compare("Sup3r-secret?", hash))
	})

	t.Run("HashesAreSalted", func(t *testing.T) {
		first, err := svc.Hash("Sup3r-secret!")
		require.NoError(t, err)
		second, err := svc.Hash("Sup3r-secret!")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("CompareRejectsGarbageHash", func(t *testing.T) {
		assert.False(t, svc.Compare("Sup3r-secret!", "not-a-hash"))
	})
}
