package repository

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/otc-market/base/ctx"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/listing"
	"github.com/x-xyz/otc-market/domain/purchase"
	"github.com/x-xyz/otc-market/stores/market"
)

func newStoreWithListing(t *testing.T) *market.Store {
	store := market.New()
	require.NoError(t, store.Update(func(tx *market.Tx) error {
		_, err := tx.InsertListing(&listing.Listing{Amount: domain.Uint256FromUint64(100)})
		return err
	}))
	return store
}

func TestInsertIfAbsent(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	repo := New(newStoreWithListing(t))

	_, err := repo.FindOne(c, 1)
	req.True(errors.Is(err, domain.ErrNoIntentFound))

	_, err = repo.InsertIfAbsent(c, 2, func(l *listing.Listing, existing *purchase.Intent) (*purchase.Intent, error) {
		req.Fail("build must not run for a missing listing")
		return nil, nil
	})
	req.True(errors.Is(err, domain.ErrListingNotFound))

	res, err := repo.InsertIfAbsent(c, 1, func(l *listing.Listing, existing *purchase.Intent) (*purchase.Intent, error) {
		req.Nil(existing)
		return &purchase.Intent{Id: "a", Amount: l.Amount}, nil
	})
	req.NoError(err)
	req.Equal(domain.SaleId(1), res.SaleId)

	// build sees the stored intent
	_, err = repo.InsertIfAbsent(c, 1, func(l *listing.Listing, existing *purchase.Intent) (*purchase.Intent, error) {
		req.NotNil(existing)
		req.Equal("a", existing.Id)
		return nil, domain.ErrDuplicateIntent
	})
	req.True(errors.Is(err, domain.ErrDuplicateIntent))

	// and is never allowed to replace it
	_, err = repo.InsertIfAbsent(c, 1, func(l *listing.Listing, existing *purchase.Intent) (*purchase.Intent, error) {
		return &purchase.Intent{Id: "b"}, nil
	})
	req.True(errors.Is(err, domain.ErrDuplicateIntent))

	stored, err := repo.FindOne(c, 1)
	req.NoError(err)
	req.Equal("a", stored.Id)
}

func TestInsertIfAbsentConcurrent(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	repo := New(newStoreWithListing(t))

	n := 50
	wg := sync.WaitGroup{}
	mu := sync.Mutex{}
	accepted := 0
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.InsertIfAbsent(c, 1, func(l *listing.Listing, existing *purchase.Intent) (*purchase.Intent, error) {
				if existing != nil {
					return nil, domain.ErrDuplicateIntent
				}
				return &purchase.Intent{}, nil
			})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	req.Equal(1, accepted)
}
