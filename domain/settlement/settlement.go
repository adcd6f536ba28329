package settlement

import (
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/listing"
	"github.com/x-xyz/otc-market/domain/trade"
)

type Kind string

const (
	KindPurchase Kind = "purchase"
	KindAuction  Kind = "auction"
)

type Request struct {
	SaleId                 domain.SaleId
	OwnerApprovalSignature trade.Signature
	OwnerAddress           domain.Address
}

// TxDescriptor is an unsigned legacy transaction for the owner to sign and broadcast
type TxDescriptor struct {
	ChainId  domain.ChainId `json:"chainId"`
	From     domain.Address `json:"from"`
	To       domain.Address `json:"to"`
	Gas      uint64         `json:"gas"`
	GasPrice domain.Uint256 `json:"gasPrice"`
	Nonce    uint64         `json:"nonce"`
	Data     hexutil.Bytes  `json:"data"`
	Value    domain.Uint256 `json:"value"`
}

func (d *TxDescriptor) ToTransaction() *types.Transaction {
	to := d.To.ToCommon()
	return types.NewTx(&types.LegacyTx{
		Nonce:    d.Nonce,
		GasPrice: d.GasPrice.BigInt(),
		Gas:      d.Gas,
		To:       &to,
		Value:    d.Value.BigInt(),
		Data:     d.Data,
	})
}

// Candidate is what a settlement would execute: the listing and the taker's signed terms
type Candidate struct {
	Kind           Kind
	Listing        *listing.Listing
	Terms          trade.Terms
	TakerSignature trade.Signature
	TakerAddress   domain.Address
}

// CheckFunc runs under the store lock, an error aborts the reservation
type CheckFunc func(c *Candidate) error

type Repo interface {
	// Reserve loads the candidate of saleId and runs check on it.
	// When exclusive, a settled or in-flight listing is refused and the listing is marked in-flight.
	Reserve(ctx ctx.Ctx, kind Kind, saleId domain.SaleId, check CheckFunc, exclusive bool) (*Candidate, error)
	// Complete clears the in-flight mark and stamps settledAt on first success
	Complete(ctx ctx.Ctx, saleId domain.SaleId, at time.Time) error
	// Release clears the in-flight mark only
	Release(ctx ctx.Ctx, saleId domain.SaleId) error
}

type TxBuilder interface {
	BuildSettlementTx(ctx ctx.Ctx, terms trade.Terms, takerSig, ownerSig []byte, sender domain.Address) (*TxDescriptor, error)
}

type UseCase interface {
	SettlePurchase(ctx ctx.Ctx, req *Request) (*TxDescriptor, error)
	SettleAuction(ctx ctx.Ctx, req *Request) (*TxDescriptor, error)
}
