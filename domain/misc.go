package domain

import (
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) IsValid() bool {
	return common.IsHexAddress(string(a))
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

func AddressFromCommon(addr common.Address) Address {
	return Address(addr.Hex()).ToLower()
}

// SaleId is assigned by the listing registry, starting from 1
type SaleId uint64

func (id SaleId) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

func ParseSaleId(s string) (SaleId, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, xerrors.Errorf("saleId %q: %w", s, ErrBadParamInput)
	}
	return SaleId(id), nil
}

type BlockNumber uint64

type TxHash string
