package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatNaira(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₦0"},
		{500, "₦500"},
		{5000, "₦5,000"},
		{100000, "₦100,000"},
		{1234567.891, "₦1,234,567.89"},
		{1250.5, "₦1,250.5"},
		{-2000, "-₦2,000"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatNaira(c.in))
	}
	assert.Equal(t, "+₦5,000", FormatSigned(5000, true))
	assert.Equal(t, "-₦5,000", FormatSigned(5000, false))
}

func TestGeneratedIdentifiers(t *testing.T) {
	at := time.UnixMilli(1719835200000)

	assert.Regexp(t, regexp.MustCompile(`^DEP_1719835200000_[0-9a-f]{6}$`), GeneratePrefixedID("DEP", at))
	assert.Regexp(t, regexp.MustCompile(`^SE1719835200000[A-Z0-9]{4}$`), GenerateReference(at))
	assert.Regexp(t, regexp.MustCompile(`^0x[0-9a-f]{40}$`), GenerateTxHash())
	assert.NotEqual(t, GenerateID(), GenerateID())
}

func TestMaskAccountNumber(t *testing.T) {
	assert.Equal(t, "******5678", MaskAccountNumber("0801235678"))
	assert.Equal(t, "123", MaskAccountNumber("123"))
}
