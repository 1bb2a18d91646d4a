package pkg

import (
	"crypto/rand"
	"math/big"
)

const maxGameID = 99999999

// GenerateGameID - generates a unique identifier for a game.
func GenerateGameID() string {
	n, err := rand.Int(rand.Reader, big.NewInt(maxGameID))
	if err != nil {
		return ""
	}

	return n.String()
}
