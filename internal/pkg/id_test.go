package pkg

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateGameID(t *testing.T) {
	ids := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id := GenerateGameID()

		n, err := strconv.Atoi(id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, maxGameID)

		ids[id] = struct{}{}
	}

	assert.Greater(t, len(ids), 90)
}
