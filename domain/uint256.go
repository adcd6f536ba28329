package domain

import (
	"bytes"
	"encoding/json"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"
)

// Uint256 is an immutable unsigned 256-bit integer, encoded in JSON as a decimal string
type Uint256 struct {
	v *big.Int
}

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// maxUint256Digits is the number of decimal digits of 2^256-1
const maxUint256Digits = 78

func NewUint256(i *big.Int) (Uint256, error) {
	if i == nil || i.Sign() < 0 || i.Cmp(maxUint256) > 0 {
		return Uint256{}, ErrInvalidNumberFormat
	}
	return Uint256{v: new(big.Int).Set(i)}, nil
}

func MustUint256(i *big.Int) Uint256 {
	u, err := NewUint256(i)
	if err != nil {
		panic(err)
	}
	return u
}

func Uint256FromUint64(i uint64) Uint256 {
	return Uint256{v: new(big.Int).SetUint64(i)}
}

// ParseUint256 accepts decimal integers, also in exponent or "10.0" notation
func ParseUint256(s string) (Uint256, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Uint256{}, xerrors.Errorf("%q: %w", s, ErrInvalidNumberFormat)
	}
	if d.Sign() == 0 {
		return Uint256{v: new(big.Int)}, nil
	}
	if d.Sign() < 0 {
		return Uint256{}, xerrors.Errorf("%q is negative: %w", s, ErrInvalidNumberFormat)
	}
	// bound the exponent before anything expands 10^exp
	exp := int64(d.Exponent())
	digits := int64(len(d.Coefficient().String()))
	if exp > 0 && digits+exp > maxUint256Digits {
		return Uint256{}, xerrors.Errorf("%q out of range: %w", s, ErrInvalidNumberFormat)
	}
	if exp < 0 && -exp > digits {
		return Uint256{}, xerrors.Errorf("%q is not an integer: %w", s, ErrInvalidNumberFormat)
	}
	if !d.Equal(d.Truncate(0)) {
		return Uint256{}, xerrors.Errorf("%q is not an integer: %w", s, ErrInvalidNumberFormat)
	}
	u, err := NewUint256(d.BigInt())
	if err != nil {
		return Uint256{}, xerrors.Errorf("%q out of range: %w", s, err)
	}
	return u, nil
}

// BigInt returns a copy
func (u Uint256) BigInt() *big.Int {
	if u.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(u.v)
}

func (u Uint256) Cmp(o Uint256) int {
	return u.BigInt().Cmp(o.BigInt())
}

func (u Uint256) IsZero() bool {
	return u.v == nil || u.v.Sign() == 0
}

func (u Uint256) String() string {
	return u.BigInt().String()
}

func (u Uint256) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u *Uint256) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return xerrors.Errorf("%s: %w", data, ErrInvalidNumberFormat)
		}
	}
	parsed, err := ParseUint256(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
