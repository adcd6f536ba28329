package repository

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/auction"
	"github.com/x-xyz/otc-market/domain/listing"
	"github.com/x-xyz/otc-market/stores/market"
)

func newStoreWithAuction(t *testing.T) *market.Store {
	store := market.New()
	require.NoError(t, store.Update(func(tx *market.Tx) error {
		_, err := tx.InsertListing(&listing.Listing{IsAuction: true})
		return err
	}))
	return store
}

func bidOf(amount uint64) auction.BuildFunc {
	return func(l *listing.Listing, top *auction.Bid) (*auction.Bid, error) {
		return &auction.Bid{Amount: domain.Uint256FromUint64(amount)}, nil
	}
}

func TestAppendIfHigher(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	repo := New(newStoreWithAuction(t))

	bids, err := repo.FindAll(c, 1)
	req.NoError(err)
	req.Len(bids, 0)
	_, err = repo.FindTop(c, 1)
	req.True(errors.Is(err, domain.ErrNoBidsFound))

	_, err = repo.AppendIfHigher(c, 2, bidOf(1))
	req.True(errors.Is(err, domain.ErrListingNotFound))

	_, err = repo.AppendIfHigher(c, 1, bidOf(50))
	req.NoError(err)
	_, err = repo.AppendIfHigher(c, 1, bidOf(60))
	req.NoError(err)

	// equal and lower are refused even if build lets them through
	_, err = repo.AppendIfHigher(c, 1, bidOf(60))
	req.True(errors.Is(err, domain.ErrBidTooLow))
	_, err = repo.AppendIfHigher(c, 1, bidOf(55))
	req.True(errors.Is(err, domain.ErrBidTooLow))

	// build sees the current top
	_, err = repo.AppendIfHigher(c, 1, func(l *listing.Listing, top *auction.Bid) (*auction.Bid, error) {
		req.Equal("60", top.Amount.String())
		return nil, domain.ErrSignatureMismatch
	})
	req.True(errors.Is(err, domain.ErrSignatureMismatch))

	bids, err = repo.FindAll(c, 1)
	req.NoError(err)
	req.Len(bids, 2)
	req.Equal("50", bids[0].Amount.String())
	req.Equal("60", bids[1].Amount.String())

	top, err := repo.FindTop(c, 1)
	req.NoError(err)
	req.Equal("60", top.Amount.String())

	// returned slices are copies
	bids[0].Amount = domain.Uint256FromUint64(1)
	again, err := repo.FindAll(c, 1)
	req.NoError(err)
	req.Equal("50", again[0].Amount.String())
}

func TestAppendIfHigherConcurrent(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	repo := New(newStoreWithAuction(t))

	n := 50
	wg := sync.WaitGroup{}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(amount uint64) {
			defer wg.Done()
			// same amount twice per value
			_, _ = repo.AppendIfHigher(c, 1, bidOf(amount/2+1))
		}(uint64(i))
	}
	wg.Wait()

	bids, err := repo.FindAll(c, 1)
	req.NoError(err)
	req.NotEmpty(bids)
	for i := 1; i < len(bids); i++ {
		req.Equal(1, bids[i].Amount.Cmp(bids[i-1].Amount))
	}
}
