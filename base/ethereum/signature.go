package ethereum

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrMalformedSignature = errors.New("malformed signature")

func Keccak256(data ...[]byte) []byte {
	return crypto.Keccak256(data...)
}

// PersonalHash applies the "\x19Ethereum Signed Message:\n32" prefix used by personal_sign
func PersonalHash(digest []byte) []byte {
	return accounts.TextHash(digest)
}

// DecodeSignature decodes a 0x-prefixed 65 bytes signature
func DecodeSignature(signature string) ([]byte, error) {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedSignature, err)
	}
	if len(sig) != crypto.SignatureLength {
		return nil, fmt.Errorf("%w: signature must be %d bytes long", ErrMalformedSignature, crypto.SignatureLength)
	}
	return sig, nil
}

// RecoverSigner returns the address which signed the given hash
func RecoverSigner(hash []byte, sig []byte) (common.Address, error) {
	return ecRecover(hash, sig)
}

// ValidatePersonalSignature reports whether signature is a personal_sign of digest by signer
func ValidatePersonalSignature(digest []byte, signature []byte, signer common.Address) (bool, error) {
	recovered, err := RecoverSigner(PersonalHash(digest), signature)
	if err != nil {
		return false, err
	}
	return recovered == signer, nil
}

// SignPersonal signs digest the way a wallet answers personal_sign, V is 27 or 28
func SignPersonal(digest []byte, key *ecdsa.PrivateKey) ([]byte, error) {
	sig, err := crypto.Sign(PersonalHash(digest), key)
	if err != nil {
		return nil, err
	}
	sig[crypto.RecoveryIDOffset] += 27
	return sig, nil
}

// ecRecover returns the address for the account that was used to create the signature.
// adapted from internal go-ethereum function, the input signature is never modified:
// https://github.com/ethereum/go-ethereum/blob/v1.10.9/internal/ethapi/api.go#L524
func ecRecover(data []byte, signature []byte) (common.Address, error) {
	if len(signature) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("%w: signature must be %d bytes long", ErrMalformedSignature, crypto.SignatureLength)
	}
	sig := make([]byte, crypto.SignatureLength)
	copy(sig, signature)

	// support both versions of `eth_sign` responses
	//	@see	https://github.com/ethereumjs/ethereumjs-util/blob/master/src/signature.ts#L112
	if sig[crypto.RecoveryIDOffset] < 27 {
		sig[crypto.RecoveryIDOffset] += 27
	}

	if sig[crypto.RecoveryIDOffset] != 27 && sig[crypto.RecoveryIDOffset] != 28 {
		return common.Address{}, fmt.Errorf("%w: invalid Ethereum signature (V is not 27 or 28)", ErrMalformedSignature)
	}

	sig[crypto.RecoveryIDOffset] -= 27 // Transform yellow paper V from 27/28 to 0/1

	rpk, err := crypto.SigToPub(data, sig)

	if err != nil {
		return common.Address{}, err
	}

	return crypto.PubkeyToAddress(*rpk), nil
}
