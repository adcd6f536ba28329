package ethereum

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestParsePrivateKey(t *testing.T) {
	req := require.New(t)

	// first hardhat account
	key, err := ParsePrivateKey("0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	req.NoError(err)
	req.Equal(common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), KeyAddress(key))

	same, err := ParsePrivateKey(hexutil.Encode(crypto.FromECDSA(key))[2:])
	req.NoError(err)
	req.Equal(KeyAddress(key), KeyAddress(same))

	_, err = ParsePrivateKey("0x1234")
	req.Error(err)
}
