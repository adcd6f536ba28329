package ethereum

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
)

// EncodePacked mirrors solidity abi.encodePacked for the types listed.
// Supported types: address, uint256, bytes32, bytes.
func EncodePacked(types []string, values []interface{}) ([]byte, error) {
	if len(types) != len(values) {
		return nil, fmt.Errorf("types/values length mismatch: %d != %d", len(types), len(values))
	}
	out := []byte{}
	for i, typ := range types {
		b, err := packValue(typ, values[i])
		if err != nil {
			return nil, fmt.Errorf("arg %d: %w", i, err)
		}
		out = append(out, b...)
	}
	return out, nil
}

// SolidityKeccak is keccak256(abi.encodePacked(values...))
func SolidityKeccak(types []string, values []interface{}) ([]byte, error) {
	packed, err := EncodePacked(types, values)
	if err != nil {
		return nil, err
	}
	return Keccak256(packed), nil
}

func packValue(typ string, value interface{}) ([]byte, error) {
	switch typ {
	case "address":
		addr, ok := value.(common.Address)
		if !ok {
			return nil, fmt.Errorf("expect common.Address for address, got %T", value)
		}
		return addr.Bytes(), nil
	case "uint256":
		n, ok := value.(*big.Int)
		if !ok || n == nil {
			return nil, fmt.Errorf("expect *big.Int for uint256, got %T", value)
		}
		if n.Sign() < 0 || n.BitLen() > 256 {
			return nil, fmt.Errorf("uint256 out of range: %s", n)
		}
		return math.PaddedBigBytes(n, 32), nil
	case "bytes32":
		h, ok := value.(common.Hash)
		if !ok {
			return nil, fmt.Errorf("expect common.Hash for bytes32, got %T", value)
		}
		return h.Bytes(), nil
	case "bytes":
		b, ok := value.([]byte)
		if !ok {
			return nil, fmt.Errorf("expect []byte for bytes, got %T", value)
		}
		return b, nil
	}
	return nil, fmt.Errorf("unsupported type %s", typ)
}
