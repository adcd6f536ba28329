package abi

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestToTransferLog(t *testing.T) {
	req := require.New(t)

	from := common.HexToAddress("0x00000000000000000000000000000000000000cc")
	to := common.HexToAddress("0x00000000000000000000000000000000000000dd")
	sig := crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
	req.Equal(sig, ERC721TokenABI.Events["Transfer"].ID)

	l := &types.Log{
		Topics: []common.Hash{
			sig,
			common.BytesToHash(from.Bytes()),
			common.BytesToHash(to.Bytes()),
			common.BigToHash(big.NewInt(42)),
		},
	}
	res, err := ToTransferLog(l)
	req.NoError(err)
	req.Equal(from, res.From)
	req.Equal(to, res.To)
	req.Equal(int64(42), res.TokenId.Int64())

	// erc20 Transfer has the amount in data, not a fourth topic
	l.Topics = l.Topics[:3]
	_, err = ToTransferLog(l)
	req.ErrorIs(err, ErrMalformedLog)
}

func TestPackFinishAuction(t *testing.T) {
	req := require.New(t)

	method := MarketplaceABI.Methods["finishAuction"]
	req.Equal("finishAuction((address,address,uint256,uint256),bytes,bytes)", method.Sig)

	data := AuctionData{
		NftCollectionAddress: common.HexToAddress("0x00000000000000000000000000000000000000aa"),
		Erc20Address:         common.HexToAddress("0x00000000000000000000000000000000000000bb"),
		TokenId:              big.NewInt(1),
		Erc20Amount:          big.NewInt(100),
	}
	packed, err := MarketplaceABI.Pack("finishAuction", data, []byte{1}, []byte{2})
	req.NoError(err)
	req.Equal(method.ID, packed[:4])

	args, err := method.Inputs.Unpack(packed[4:])
	req.NoError(err)
	req.Len(args, 3)
	req.Equal([]byte{1}, args[1])
	req.Equal([]byte{2}, args[2])
}
