package types

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golosnetwork/graphene-signer/params"
)

// AssetSymbolLen is the fixed width of the symbol field on the wire.
const AssetSymbolLen = 7

// Asset is a fixed-point amount of one chain asset, e.g. "0.100 GOLOS".
// Amount is the integer mantissa scaled by 10^Precision. The wire form is
// 8-byte little-endian mantissa, 1-byte precision, then the symbol padded
// with NULs to 7 bytes.
type Asset struct {
	Amount    int64
	Precision uint8
	Symbol    string
}

// ParseAsset parses "<decimal> <SYMBOL>" text, resolving the canonical
// precision of the symbol from the active chain config.
func ParseAsset(s string) (*Asset, error) {
	parts := strings.Split(s, " ")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q is not \"<amount> <symbol>\"", ErrInvalidAmount, s)
	}
	precision, err := params.GetChainConfig().AssetPrecision(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	return NewAsset(parts[0], parts[1], precision)
}

// NewAsset builds an asset from decimal text and an explicit precision.
// The decimal may carry at most precision fraction digits.
func NewAsset(number, symbol string, precision uint8) (*Asset, error) {
	if err := checkSymbol(symbol); err != nil {
		return nil, err
	}
	negative := strings.HasPrefix(number, "-")
	digits := strings.TrimPrefix(number, "-")
	whole, frac := digits, ""
	if dot := strings.IndexByte(digits, '.'); dot >= 0 {
		whole, frac = digits[:dot], digits[dot+1:]
	}
	if whole == "" || !isDecimalDigits(whole) || (frac != "" && !isDecimalDigits(frac)) {
		return nil, fmt.Errorf("%w: malformed decimal %q", ErrInvalidAmount, number)
	}
	if len(frac) > int(precision) {
		return nil, fmt.Errorf("%w: %q has %v fraction digits, precision is %v",
			ErrInvalidAmount, number, len(frac), precision)
	}
	mantissa, err := strconv.ParseInt(whole+frac+strings.Repeat("0", int(precision)-len(frac)), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q out of range", ErrInvalidAmount, number)
	}
	if negative {
		mantissa = -mantissa
	}
	return &Asset{Amount: mantissa, Precision: precision, Symbol: symbol}, nil
}

func checkSymbol(symbol string) error {
	if symbol == "" || len(symbol) > AssetSymbolLen {
		return fmt.Errorf("%w: bad symbol %q", ErrInvalidAmount, symbol)
	}
	for i := 0; i < len(symbol); i++ {
		c := symbol[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return fmt.Errorf("%w: bad symbol %q", ErrInvalidAmount, symbol)
		}
	}
	return nil
}

func isDecimalDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// String renders the decimal text form with exactly Precision fraction
// digits, e.g. "0.100 GOLOS".
func (a *Asset) String() string {
	digits := strconv.FormatInt(a.Amount, 10)
	sign := ""
	if a.Amount < 0 {
		sign, digits = "-", digits[1:]
	}
	if a.Precision == 0 {
		return fmt.Sprintf("%s%s %s", sign, digits, a.Symbol)
	}
	for len(digits) <= int(a.Precision) {
		digits = "0" + digits
	}
	split := len(digits) - int(a.Precision)
	return fmt.Sprintf("%s%s.%s %s", sign, digits[:split], digits[split:], a.Symbol)
}

func (a *Asset) Marshal(w io.Writer) error {
	if err := checkSymbol(a.Symbol); err != nil {
		return err
	}
	if err := Int64(a.Amount).Marshal(w); err != nil {
		return err
	}
	if err := UInt8(a.Precision).Marshal(w); err != nil {
		return err
	}
	var symbol [AssetSymbolLen]byte
	copy(symbol[:], a.Symbol)
	_, err := w.Write(symbol[:])
	return err
}

func (a *Asset) Unmarshal(r Reader) error {
	var mantissa Int64
	if err := mantissa.Unmarshal(r); err != nil {
		return err
	}
	var precision UInt8
	if err := precision.Unmarshal(r); err != nil {
		return err
	}
	var symbol [AssetSymbolLen]byte
	if err := readFull(r, symbol[:]); err != nil {
		return err
	}
	name := strings.TrimRight(string(symbol[:]), "\x00")
	if err := checkSymbol(name); err != nil {
		return err
	}
	a.Amount, a.Precision, a.Symbol = int64(mantissa), uint8(precision), name
	return nil
}
