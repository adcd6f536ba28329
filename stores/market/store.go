package market

import (
	"errors"
	"sync"

	"github.com/x-xyz/otc-market/base/counter"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/auction"
	"github.com/x-xyz/otc-market/domain/listing"
	"github.com/x-xyz/otc-market/domain/purchase"
)

var ErrTxNotWritable = errors.New("tx not writable")

// Store owns every listing, purchase intent and bid sequence behind a single lock.
// Repositories read and write through View and Update, so a check and its write share one lock scope.
type Store struct {
	mu       sync.RWMutex
	seq      *counter.Sequence
	listings []*listing.Listing
	intents  map[domain.SaleId]*purchase.Intent
	bids     map[domain.SaleId][]*auction.Bid
	inFlight map[domain.SaleId]struct{}
}

func New() *Store {
	return &Store{
		seq:      counter.NewSequence(),
		intents:  make(map[domain.SaleId]*purchase.Intent),
		bids:     make(map[domain.SaleId][]*auction.Bid),
		inFlight: make(map[domain.SaleId]struct{}),
	}
}

// View runs fn under the read lock
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{s: s})
}

// Update runs fn under the write lock. fn must not block on anything outside the store.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{s: s, writable: true})
}

// Tx gives access to the store records. Records are shared, repositories copy them before handing them out.
type Tx struct {
	s        *Store
	writable bool
}

func (tx *Tx) Listing(saleId domain.SaleId) *listing.Listing {
	// sale ids are handed out from 1 without gaps
	if saleId == 0 || uint64(saleId) > uint64(len(tx.s.listings)) {
		return nil
	}
	return tx.s.listings[saleId-1]
}

// Listings returns every listing in sale id order
func (tx *Tx) Listings() []*listing.Listing {
	return tx.s.listings
}

// InsertListing sets the next sale id on l and stores it
func (tx *Tx) InsertListing(l *listing.Listing) (domain.SaleId, error) {
	if !tx.writable {
		return 0, ErrTxNotWritable
	}
	l.SaleId = domain.SaleId(tx.s.seq.Next())
	tx.s.listings = append(tx.s.listings, l)
	return l.SaleId, nil
}

func (tx *Tx) Intent(saleId domain.SaleId) *purchase.Intent {
	return tx.s.intents[saleId]
}

func (tx *Tx) PutIntent(i *purchase.Intent) error {
	if !tx.writable {
		return ErrTxNotWritable
	}
	tx.s.intents[i.SaleId] = i
	return nil
}

func (tx *Tx) Bids(saleId domain.SaleId) []*auction.Bid {
	return tx.s.bids[saleId]
}

func (tx *Tx) TopBid(saleId domain.SaleId) *auction.Bid {
	bids := tx.s.bids[saleId]
	if len(bids) == 0 {
		return nil
	}
	return bids[len(bids)-1]
}

func (tx *Tx) AppendBid(b *auction.Bid) error {
	if !tx.writable {
		return ErrTxNotWritable
	}
	tx.s.bids[b.SaleId] = append(tx.s.bids[b.SaleId], b)
	return nil
}

func (tx *Tx) InFlight(saleId domain.SaleId) bool {
	_, ok := tx.s.inFlight[saleId]
	return ok
}

func (tx *Tx) SetInFlight(saleId domain.SaleId, inFlight bool) error {
	if !tx.writable {
		return ErrTxNotWritable
	}
	if inFlight {
		tx.s.inFlight[saleId] = struct{}{}
	} else {
		delete(tx.s.inFlight, saleId)
	}
	return nil
}
