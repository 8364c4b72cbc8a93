// utils/response.go
package utils

import (
	"math/rand"

	"github.com/gin-gonic/gin"
)

// RespondWithError writes a JSON error body; every failed mutation
// produces exactly one of these.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

const randomChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomString returns a random uppercase alphanumeric string,
// used for invoice number suffixes.
func GenerateRandomString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = randomChars[rand.Intn(len(randomChars))]
	}
	return string(b)
}
