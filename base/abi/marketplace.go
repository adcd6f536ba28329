package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var MarketplaceABI abi.ABI

var marketplaceABI = `[{"type":"function","name":"finishAuction","stateMutability":"nonpayable","inputs":[{"type":"tuple","name":"auctionData","internalType":"struct Marketplace.AuctionData","components":[{"type":"address","name":"nftCollectionAddress"},{"type":"address","name":"erc20Address"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"erc20Amount"}]},{"type":"bytes","name":"bidderSig"},{"type":"bytes","name":"ownerApprovalSig"}],"outputs":[]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi
}

// AuctionData is the tuple argument of finishAuction, field order follows the contract
type AuctionData struct {
	NftCollectionAddress common.Address
	Erc20Address         common.Address
	TokenId              *big.Int
	Erc20Amount          *big.Int
}
