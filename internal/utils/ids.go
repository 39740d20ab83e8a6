package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateID returns a random entity id
func GenerateID() string {
	return uuid.NewString()
}

// GeneratePrefixedID returns ids like DEP_1719835200000_k3j9x2
func GeneratePrefixedID(prefix string, at time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%s_%d_%s", prefix, at.UnixMilli(), suffix)
}

// GenerateReference generates a payment reference: SE, the timestamp in
// milliseconds and four random characters
func GenerateReference(at time.Time) string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}

	var builder strings.Builder
	builder.WriteString("SE")
	builder.WriteString(fmt.Sprintf("%d", at.UnixMilli()))
	for _, c := range b {
		builder.WriteByte(referenceAlphabet[int(c)%len(referenceAlphabet)])
	}
	return builder.String()
}

// GenerateTxHash generates a 0x-prefixed 40 digit hex hash
func GenerateTxHash() string {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return "0x" + hex.EncodeToString(b)
}

// MaskAccountNumber keeps the last four digits of an account number
func MaskAccountNumber(account string) string {
	if len(account) <= 4 {
		return account
	}
	return strings.Repeat("*", len(account)-4) + account[len(account)-4:]
}
