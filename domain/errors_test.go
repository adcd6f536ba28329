package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/xerrors"
)

func TestErrorKinds(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		err  error
		kind error
	}{
		{ErrMissingField, ErrValidation},
		{ErrListingNotFound, ErrNotFound},
		{ErrNoIntentFound, ErrNotFound},
		{ErrBidTooLow, ErrStateConflict},
		{ErrNotTokenOwner, ErrStateConflict},
		{ErrSignatureMismatch, ErrUnauthorized},
		{ErrOwnerSignatureMismatch, ErrUnauthorized},
	}

	for _, tt := range tests {
		wrapped := xerrors.Errorf("saleId 1: %w", tt.err)
		req.True(errors.Is(wrapped, tt.err), tt.err.Error())
		req.True(errors.Is(wrapped, tt.kind), tt.err.Error())
	}

	req.False(errors.Is(ErrBidTooLow, ErrAmountMismatch))
	req.False(errors.Is(ErrBidTooLow, ErrValidation))
}

func TestParseSaleId(t *testing.T) {
	req := require.New(t)

	id, err := ParseSaleId("12")
	req.NoError(err)
	req.Equal(SaleId(12), id)

	for _, s := range []string{"0", "-1", "abc", ""} {
		_, err := ParseSaleId(s)
		req.True(errors.Is(err, ErrValidation), s)
	}
}

func TestAddress(t *testing.T) {
	req := require.New(t)

	a := Address("0x939ae6A4C8dfDBB1f7085189574F0A938013952A")
	req.True(a.IsValid())
	req.True(a.Equals(a.ToLower()))
	req.Equal(a.ToLower(), AddressFromCommon(a.ToCommon()))
	req.False(Address("0x000").IsValid())
	req.True(Address("").IsEmpty())
}

func TestReason(t *testing.T) {
	req := require.New(t)

	req.Equal("bid_must_be_higher_than_the_current_top_bid", Reason(xerrors.Errorf("saleId 1: %w", ErrBidTooLow)))
	req.Equal("internal", Reason(errors.New("boom")))
}
