package tracker

import (
	"strings"

	"github.com/x-xyz/otc-market/domain"
)

type Hexable interface {
	Hex() string
}

func ToLowerHexStr(h Hexable) string {
	return strings.ToLower(h.Hex())
}

func toDomainAddress(h Hexable) domain.Address {
	return domain.Address(ToLowerHexStr(h))
}
