package pricing

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// identifierBits is the width of an EVM address.
const identifierBits = 160

var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrIdentifierTooWide = errors.New("identifier wider than 160 bits")
	ErrInvalidAmount     = errors.New("invalid amount")
)

// Token pairs a token identifier with the quantity supplied for it.
type Token struct {
	ID       *big.Int
	Address  common.Address
	Amount   decimal.Decimal
	Decimals uint8
}

// NewToken parses an identifier and an amount into a Token. When decimals is
// non-zero the amount is treated as a human amount and scaled to base units.
func NewToken(identifier string, amount string, decimals uint8) (Token, error) {
	id, err := ParseIdentifier(identifier)
	if err != nil {
		return Token{}, err
	}
	value, err := ParseAmount(amount, decimals)
	if err != nil {
		return Token{}, err
	}
	return Token{
		ID:       id,
		Address:  common.BigToAddress(id),
		Amount:   value,
		Decimals: decimals,
	}, nil
}

// ParseIdentifier parses the hexadecimal digits of an address-like identifier
// as an unsigned integer. The 0x prefix is optional.
func ParseIdentifier(input string) (*big.Int, error) {
	digits := strings.TrimSpace(input)
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	if !isHex(digits) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, input)
	}

	id, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, input)
	}
	if id.BitLen() > identifierBits {
		return nil, fmt.Errorf("%w: %q", ErrIdentifierTooWide, input)
	}
	return id, nil
}

// maxAmountExponent bounds the decimal exponent of a parsed amount.
const maxAmountExponent = 10000

// ParseAmount parses a decimal amount (scientific notation allowed) and shifts
// it left by decimals places. Exponents beyond ±maxAmountExponent are rejected.
func ParseAmount(input string, decimals uint8) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(input))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", ErrInvalidAmount, input, err)
	}
	// The exact sqrt expands the exponent into a full integer.
	if exp := value.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero, fmt.Errorf("%w: %q: exponent %d out of range", ErrInvalidAmount, input, exp)
	}
	if decimals > 0 {
		value = value.Shift(int32(decimals))
	}
	return value, nil
}

func isHex(input string) bool {
	for _, r := range input {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return input != ""
}
