package trade

import (
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/x-xyz/otc-market/base/ethereum"
	"github.com/x-xyz/otc-market/domain"
)

// Terms is the tuple a taker signs and the marketplace contract settles
type Terms struct {
	CollectionAddress   domain.Address
	PaymentTokenAddress domain.Address
	TokenId             domain.Uint256
	Amount              domain.Uint256
}

var digestTypes = []string{"address", "address", "uint256", "uint256"}

// Digest is keccak256(abi.encodePacked(collection, paymentToken, tokenId, amount))
func (t Terms) Digest() []byte {
	digest, err := ethereum.SolidityKeccak(digestTypes, []interface{}{
		t.CollectionAddress.ToCommon(),
		t.PaymentTokenAddress.ToCommon(),
		t.TokenId.BigInt(),
		t.Amount.BigInt(),
	})
	if err != nil {
		// every value is range checked by its type
		panic(err)
	}
	return digest
}

// ApprovalDigest is keccak256 over the raw bytes of the taker's signature
func ApprovalDigest(takerSig []byte) []byte {
	return ethereum.Keccak256(takerSig)
}

// VerifyTaker reports whether sig is a personal_sign of the terms digest by taker.
// A malformed signature never verifies.
func VerifyTaker(terms Terms, sig []byte, taker domain.Address) bool {
	ok, err := ethereum.ValidatePersonalSignature(terms.Digest(), sig, taker.ToCommon())
	return err == nil && ok
}

// VerifyApproval reports whether ownerSig is a personal_sign of the approval digest by owner
func VerifyApproval(takerSig, ownerSig []byte, owner domain.Address) bool {
	ok, err := ethereum.ValidatePersonalSignature(ApprovalDigest(takerSig), ownerSig, owner.ToCommon())
	return err == nil && ok
}

// Signature is a 65 bytes signature kept in its 0x hex form
type Signature string

func (s Signature) Bytes() ([]byte, error) {
	sig, err := ethereum.DecodeSignature(string(s))
	if err != nil {
		return nil, err
	}
	return sig, nil
}

func (s Signature) IsEmpty() bool {
	return len(s) == 0
}

// Normalize lower-cases the hex encoding, bytes are untouched
func (s Signature) Normalize() (Signature, error) {
	b, err := s.Bytes()
	if err != nil {
		return "", err
	}
	return Signature(hexutil.Encode(b)), nil
}
