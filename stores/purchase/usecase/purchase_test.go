package usecase

import (
	"crypto/ecdsa"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/base/ethereum"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/listing"
	"github.com/x-xyz/otc-market/domain/purchase"
	"github.com/x-xyz/otc-market/domain/trade"
	listingRepository "github.com/x-xyz/otc-market/stores/listing/repository"
	"github.com/x-xyz/otc-market/stores/market"
	purchaseRepository "github.com/x-xyz/otc-market/stores/purchase/repository"
)

var (
	collection = domain.Address("0x00000000000000000000000000000000000000aa")
	payToken   = domain.Address("0x00000000000000000000000000000000000000bb")
	owner      = domain.Address("0x00000000000000000000000000000000000000cc")
)

type testSuite struct {
	suite.Suite

	ctx         ctx.Ctx
	store       *market.Store
	listingRepo listing.Repo
	buyerKey    *ecdsa.PrivateKey
	buyer       domain.Address

	im purchase.UseCase
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.store = market.New()
	s.listingRepo = listingRepository.New(s.store)
	s.im = New(purchaseRepository.New(s.store))

	key, pub, err := ethereum.GenerateKey()
	s.Require().NoError(err)
	s.buyerKey = key
	s.buyer = domain.AddressFromCommon(crypto.PubkeyToAddress(*pub))
}

func (s *testSuite) createListing(amount uint64, isAuction bool) domain.SaleId {
	id, err := s.listingRepo.Insert(s.ctx, &listing.Listing{
		CollectionAddress:   collection,
		TokenId:             domain.Uint256FromUint64(1),
		PaymentTokenAddress: payToken,
		Amount:              domain.Uint256FromUint64(amount),
		IsAuction:           isAuction,
		OwnerAddress:        owner,
		CreatedAt:           time.Now(),
	})
	s.Require().NoError(err)
	return id
}

func (s *testSuite) sign(terms trade.Terms) trade.Signature {
	sig, err := ethereum.SignPersonal(terms.Digest(), s.buyerKey)
	s.Require().NoError(err)
	return trade.Signature(hexutil.Encode(sig))
}

func (s *testSuite) params(saleId domain.SaleId, amount uint64) *purchase.SubmitParams {
	tokenId := domain.Uint256FromUint64(1)
	a := domain.Uint256FromUint64(amount)
	return &purchase.SubmitParams{
		SaleId:              saleId,
		CollectionAddress:   collection,
		PaymentTokenAddress: payToken,
		TokenId:             &tokenId,
		Amount:              &a,
		BuyerSignature: s.sign(trade.Terms{
			CollectionAddress:   collection,
			PaymentTokenAddress: payToken,
			TokenId:             tokenId,
			Amount:              a,
		}),
		BuyerAddress: s.buyer,
	}
}

// listing 1 at 100, buyer signs the exact terms
func (s *testSuite) TestSubmitPurchaseIntent() {
	saleId := s.createListing(100, false)

	intent, err := s.im.SubmitPurchaseIntent(s.ctx, s.params(saleId, 100))
	s.Require().NoError(err)
	s.NotEmpty(intent.Id)
	s.Equal(saleId, intent.SaleId)
	s.Equal("100", intent.Amount.String())
	s.Equal(s.buyer, intent.BuyerAddress)

	stored, err := s.im.GetIntent(s.ctx, saleId)
	s.Require().NoError(err)
	s.Equal(intent, stored)

	// second intent for the same listing
	_, err = s.im.SubmitPurchaseIntent(s.ctx, s.params(saleId, 100))
	s.True(errors.Is(err, domain.ErrDuplicateIntent))
}

func (s *testSuite) TestSubmitPurchaseIntentErrors() {
	direct := s.createListing(100, false)
	auctionId := s.createListing(100, true)

	tests := []struct {
		desc   string
		params func() *purchase.SubmitParams
		expErr error
	}{
		{
			desc:   "missing saleId",
			params: func() *purchase.SubmitParams { p := s.params(direct, 100); p.SaleId = 0; return p },
			expErr: domain.ErrMissingField,
		},
		{
			desc:   "missing signature",
			params: func() *purchase.SubmitParams { p := s.params(direct, 100); p.BuyerSignature = ""; return p },
			expErr: domain.ErrMissingField,
		},
		{
			desc:   "missing amount",
			params: func() *purchase.SubmitParams { p := s.params(direct, 100); p.Amount = nil; return p },
			expErr: domain.ErrMissingField,
		},
		{
			desc:   "unknown listing",
			params: func() *purchase.SubmitParams { return s.params(99, 100) },
			expErr: domain.ErrListingNotFound,
		},
		{
			desc:   "auction listing",
			params: func() *purchase.SubmitParams { return s.params(auctionId, 100) },
			expErr: domain.ErrListingIsAuction,
		},
		{
			desc:   "amount mismatch",
			params: func() *purchase.SubmitParams { return s.params(direct, 90) },
			expErr: domain.ErrAmountMismatch,
		},
		{
			desc: "signature by someone else",
			params: func() *purchase.SubmitParams {
				p := s.params(direct, 100)
				p.BuyerAddress = "0x00000000000000000000000000000000000000dd"
				return p
			},
			expErr: domain.ErrSignatureMismatch,
		},
		{
			desc: "malformed signature",
			params: func() *purchase.SubmitParams {
				p := s.params(direct, 100)
				p.BuyerSignature = "0x1234"
				return p
			},
			expErr: domain.ErrSignatureMismatch,
		},
	}

	for _, t := range tests {
		_, err := s.im.SubmitPurchaseIntent(s.ctx, t.params())
		s.True(errors.Is(err, t.expErr), t.desc)
	}

	_, err := s.im.GetIntent(s.ctx, direct)
	s.True(errors.Is(err, domain.ErrNoIntentFound))
}

// a payload signed over other terms is never stored, even when self consistent
func (s *testSuite) TestSubmitPurchaseIntentOtherCollection() {
	saleId := s.createListing(100, false)

	p := s.params(saleId, 100)
	other := domain.Address("0x00000000000000000000000000000000000000ee")
	p.CollectionAddress = other
	p.BuyerSignature = s.sign(trade.Terms{
		CollectionAddress:   other,
		PaymentTokenAddress: payToken,
		TokenId:             *p.TokenId,
		Amount:              *p.Amount,
	})

	_, err := s.im.SubmitPurchaseIntent(s.ctx, p)
	s.True(errors.Is(err, domain.ErrSignatureMismatch))
}

func (s *testSuite) TestSubmitPurchaseIntentConcurrent() {
	saleId := s.createListing(100, false)

	n := 20
	errs := make(chan error, n)
	wg := sync.WaitGroup{}
	for i := 0; i < n; i++ {
		p := s.params(saleId, 100)
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.im.SubmitPurchaseIntent(s.ctx, p)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	accepted := 0
	for err := range errs {
		if err == nil {
			accepted++
		} else {
			s.True(errors.Is(err, domain.ErrDuplicateIntent))
		}
	}
	s.Equal(1, accepted)
}
