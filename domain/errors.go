package domain

import (
	"errors"
	"strings"
)

// error kinds, every specific error below belongs to exactly one of them
var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrValidation will throw if the given request-body or params is not valid
	ErrValidation = errors.New("validation error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrStateConflict will throw if the request conflicts with the current state
	ErrStateConflict = errors.New("state conflict")
	// ErrUnauthorized will throw if a signature does not belong to the claimed signer
	ErrUnauthorized = errors.New("unauthorized")
	// ErrUpstreamUnavailable will throw if a chain node can not be reached
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

// Error is a specific error carrying its kind
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

// Is matches the error itself and its kind
func (e *Error) Is(target error) bool {
	return target == e || target == e.Kind
}

// Reason returns a metric tag friendly name of the specific error in err's chain
func Reason(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return strings.ReplaceAll(e.Msg, " ", "_")
	}
	return "internal"
}

func newError(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

var (
	// validation
	ErrMissingField        = newError(ErrValidation, "missing required field")
	ErrInvalidAddress      = newError(ErrValidation, "Invalid address")
	ErrInvalidSignature    = newError(ErrValidation, "Invalid signature")
	ErrInvalidNumberFormat = newError(ErrValidation, "invalid number format")
	ErrBadParamInput       = newError(ErrValidation, "Given Param is not valid")

	// not found
	ErrListingNotFound = newError(ErrNotFound, "listing not found")
	ErrNoIntentFound   = newError(ErrNotFound, "no purchase intent found")
	ErrNoBidsFound     = newError(ErrNotFound, "no bids found")

	// state conflict
	ErrListingIsAuction      = newError(ErrStateConflict, "listing is an auction")
	ErrListingNotForAuction  = newError(ErrStateConflict, "listing is not for auction")
	ErrDuplicateIntent       = newError(ErrStateConflict, "purchase intent already exists")
	ErrAmountMismatch        = newError(ErrStateConflict, "amount does not match listing")
	ErrBidTooLow             = newError(ErrStateConflict, "bid must be higher than the current top bid")
	ErrAuctionAlreadySettled = newError(ErrStateConflict, "auction already settled")
	ErrAlreadySettled        = newError(ErrStateConflict, "listing already settled")
	ErrSettlementInProgress  = newError(ErrStateConflict, "settlement in progress")
	ErrNotTokenOwner         = newError(ErrStateConflict, "owner does not own the token")

	// authorization
	ErrSignatureMismatch      = newError(ErrUnauthorized, "signature does not match signer")
	ErrTakerSignatureMismatch = newError(ErrUnauthorized, "taker signature does not match taker")
	ErrOwnerSignatureMismatch = newError(ErrUnauthorized, "owner approval signature does not match owner")
)
