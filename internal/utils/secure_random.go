package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

const (
	accountNumberGroups     = 4
	accountNumberGroupWidth = 4
)

var groupSpace = big.NewInt(10000)

// AccountNumberPattern matches numbers produced by GenerateAccountNumber.
var AccountNumberPattern = regexp.MustCompile(`^\d{4} \d{4} \d{4} \d{4}$`)

// AccountNumberGenerator produces candidate account numbers.
type AccountNumberGenerator func() (string, error)

// GenerateAccountNumber draws four groups of four digits from a cryptographically
// secure source, e.g. "0423 9981 1200 7765".
func GenerateAccountNumber() (string, error) {
	groups := make([]string, accountNumberGroups)
	for i := range groups {
		n, err := rand.Int(rand.Reader, groupSpace)
		if err != nil {
			return "", fmt.Errorf("failed to read random digits: %w", err)
		}
		groups[i] = fmt.Sprintf("%0*d", accountNumberGroupWidth, n.Int64())
	}
	return strings.Join(groups, " "), nil
}
