package contract

import (
	"strings"
	"time"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/otc-market/base/abi"
	"github.com/x-xyz/otc-market/base/backoff"
	bCtx "github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/log"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/listing"
	"github.com/x-xyz/otc-market/service/chain"
)

type Erc721Contract interface {
	listing.OwnershipOracle
	Supports721Interface(ctx bCtx.Ctx, addr domain.Address) (bool, error)
	OwnerOf(ctx bCtx.Ctx, addr domain.Address, tokenId domain.Uint256) (domain.Address, error)
}

type Erc721Cfg struct {
	ChainService chain.Client
	ChainId      int32
	// Timeout of a single ownerOf call, 0 keeps the caller deadline
	Timeout time.Duration
	// Retries after the first failed attempt
	Retries      int
	RetryBackoff time.Duration
}

type Erc721 struct {
	chainService      chain.Client
	chainId           int32
	timeout           time.Duration
	retries           int
	retryBackoff      time.Duration
	abi               ethabi.ABI
	erc721InterfaceId [4]byte
}

func NewErc721(cfg *Erc721Cfg) *Erc721 {
	var interfaceId [4]byte
	copy(interfaceId[:], common.Hex2Bytes("80ac58cd"))
	return &Erc721{
		abi:               baseabi.ERC721TokenABI,
		chainService:      cfg.ChainService,
		chainId:           cfg.ChainId,
		timeout:           cfg.Timeout,
		retries:           cfg.Retries,
		retryBackoff:      cfg.RetryBackoff,
		erc721InterfaceId: interfaceId,
	}
}

func (e *Erc721) Supports721Interface(ctx bCtx.Ctx, addr domain.Address) (bool, error) {
	method := "supportsInterface"
	unpacked, err := e.chainService.Call(ctx, e.chainId, addr.ToCommon(), nil, e.abi, method, e.erc721InterfaceId)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, addr domain.Address, tokenId domain.Uint256) (domain.Address, error) {
	method := "ownerOf"
	if e.timeout > 0 {
		var cancel func()
		ctx, cancel = bCtx.WithTimeout(ctx, e.timeout)
		defer cancel()
	}
	unpacked, err := e.chainService.Call(ctx, e.chainId, addr.ToCommon(), nil, e.abi, method, tokenId.BigInt())
	if err != nil {
		return "", err
	}
	return domain.AddressFromCommon(unpacked[0].(common.Address)), nil
}

// IsOwner asks the collection for the current owner of tokenId.
// A reverted ownerOf, as for a token never minted, is reported as not owned.
func (e *Erc721) IsOwner(ctx bCtx.Ctx, collection, owner domain.Address, tokenId domain.Uint256) (bool, error) {
	b := backoff.NewExponential(e.retryBackoff, 0)
	for attempt := 0; ; attempt++ {
		current, err := e.OwnerOf(ctx, collection, tokenId)
		if err == nil {
			return current.Equals(owner), nil
		}
		if isReverted(err) {
			ctx.WithFields(log.Fields{
				"collection": collection,
				"tokenId":    tokenId,
			}).Info("ownerOf reverted")
			return false, nil
		}
		if attempt >= e.retries {
			ctx.WithFields(log.Fields{
				"err":        err,
				"collection": collection,
				"tokenId":    tokenId,
				"attempts":   attempt + 1,
			}).Error("ownerOf failed")
			return false, xerrors.Errorf("ownerOf %s: %v: %w", collection, err, domain.ErrUpstreamUnavailable)
		}
		if err := b.Backoff(ctx); err != nil {
			return false, xerrors.Errorf("ownerOf %s: %v: %w", collection, err, domain.ErrUpstreamUnavailable)
		}
	}
}

func isReverted(err error) bool {
	return strings.Contains(err.Error(), "execution reverted")
}
