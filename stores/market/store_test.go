package market

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/auction"
	"github.com/x-xyz/otc-market/domain/listing"
	"github.com/x-xyz/otc-market/domain/purchase"
)

func TestStore(t *testing.T) {
	req := require.New(t)
	s := New()

	req.NoError(s.Update(func(tx *Tx) error {
		for i := 0; i < 3; i++ {
			id, err := tx.InsertListing(&listing.Listing{})
			req.NoError(err)
			req.Equal(domain.SaleId(i+1), id)
		}
		return nil
	}))

	req.NoError(s.View(func(tx *Tx) error {
		req.Nil(tx.Listing(0))
		req.Nil(tx.Listing(4))
		req.Equal(domain.SaleId(2), tx.Listing(2).SaleId)
		req.Len(tx.Listings(), 3)
		req.Nil(tx.Intent(1))
		req.Nil(tx.TopBid(1))

		// writes are refused in a read tx
		_, err := tx.InsertListing(&listing.Listing{})
		req.True(errors.Is(err, ErrTxNotWritable))
		req.True(errors.Is(tx.PutIntent(&purchase.Intent{SaleId: 1}), ErrTxNotWritable))
		req.True(errors.Is(tx.AppendBid(&auction.Bid{SaleId: 1}), ErrTxNotWritable))
		req.True(errors.Is(tx.SetInFlight(1, true), ErrTxNotWritable))
		return nil
	}))

	req.NoError(s.Update(func(tx *Tx) error {
		req.NoError(tx.PutIntent(&purchase.Intent{SaleId: 1, Id: "a"}))
		req.NoError(tx.AppendBid(&auction.Bid{SaleId: 2, Id: "b1"}))
		req.NoError(tx.AppendBid(&auction.Bid{SaleId: 2, Id: "b2"}))
		req.NoError(tx.SetInFlight(3, true))
		return nil
	}))

	req.NoError(s.View(func(tx *Tx) error {
		req.Equal("a", tx.Intent(1).Id)
		req.Len(tx.Bids(2), 2)
		req.Equal("b2", tx.TopBid(2).Id)
		req.True(tx.InFlight(3))
		return nil
	}))

	req.NoError(s.Update(func(tx *Tx) error {
		return tx.SetInFlight(3, false)
	}))
	req.NoError(s.View(func(tx *Tx) error {
		req.False(tx.InFlight(3))
		return nil
	}))

	// the error of fn is returned as is
	expErr := errors.New("abort")
	req.Equal(expErr, s.Update(func(tx *Tx) error { return expErr }))
}
