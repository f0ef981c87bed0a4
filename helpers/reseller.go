package helpers

import (
	"math/rand"
	"time"
)

const letterBytes = "abcdefghijklmnopqrstuvwxyz"

func randomLetters(n int) string {
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	b := make([]byte, n)
	for i := range b {
		b[i] = letterBytes[src.Intn(len(letterBytes))]
	}
	return string(b)
}

// GenerateResellerCode prefixes the code with the tier digit so a code is
// readable at a glance: 1=distributor, 2=agency, 3=point of sale.
func GenerateResellerCode(rank string) string {
	prefix := "3"
	switch rank {
	case "distributor":
		prefix = "1"
	case "agency":
		prefix = "2"
	}
	return prefix + randomLetters(4)
}
