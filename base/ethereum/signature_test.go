package ethereum

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestRecoverSigner(t *testing.T) {
	req := require.New(t)

	// first hardhat account
	key, err := crypto.HexToECDSA("ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	req.NoError(err)
	signer := common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")

	message := []byte(fmt.Sprintf("this is signature message template %s", "123456"))
	hash := accounts.TextHash(message)
	sig, err := crypto.Sign(hash, key)
	req.NoError(err)

	recovered, err := RecoverSigner(hash, sig)
	req.NoError(err)
	req.Equal(signer, recovered)

	recovered, err = RecoverSigner(accounts.TextHash([]byte("654321")), sig)
	req.NoError(err)
	req.NotEqual(signer, recovered)

	_, err = RecoverSigner(hash, sig[:64])
	req.True(errors.Is(err, ErrMalformedSignature))
}

func TestValidatePersonalSignature(t *testing.T) {
	req := require.New(t)

	key, pub, err := GenerateKey()
	req.NoError(err)
	signer := crypto.PubkeyToAddress(*pub)
	digest := Keccak256([]byte("trade"))

	sig, err := SignPersonal(digest, key)
	req.NoError(err)
	req.Contains([]byte{27, 28}, sig[crypto.RecoveryIDOffset])

	origin := make([]byte, len(sig))
	copy(origin, sig)

	valid, err := ValidatePersonalSignature(digest, sig, signer)
	req.NoError(err)
	req.True(valid)
	// recovering must not touch the caller's bytes
	req.True(bytes.Equal(origin, sig))

	// V in 0/1 form is accepted too
	raw := make([]byte, len(sig))
	copy(raw, sig)
	raw[crypto.RecoveryIDOffset] -= 27
	valid, err = ValidatePersonalSignature(digest, raw, signer)
	req.NoError(err)
	req.True(valid)

	// other digest
	valid, err = ValidatePersonalSignature(Keccak256([]byte("other")), sig, signer)
	req.NoError(err)
	req.False(valid)

	// other signer
	_, otherPub, err := GenerateKey()
	req.NoError(err)
	valid, err = ValidatePersonalSignature(digest, sig, crypto.PubkeyToAddress(*otherPub))
	req.NoError(err)
	req.False(valid)

	// bad V
	bad := make([]byte, len(sig))
	copy(bad, sig)
	bad[crypto.RecoveryIDOffset] = 30
	_, err = ValidatePersonalSignature(digest, bad, signer)
	req.True(errors.Is(err, ErrMalformedSignature))
}

func TestDecodeSignature(t *testing.T) {
	req := require.New(t)

	_, err := DecodeSignature("0x1234")
	req.True(errors.Is(err, ErrMalformedSignature))

	_, err = DecodeSignature("not hex")
	req.True(errors.Is(err, ErrMalformedSignature))

	sig, err := DecodeSignature(hexutil.Encode(make([]byte, 65)))
	req.NoError(err)
	req.Len(sig, 65)
}

func TestSolidityKeccak(t *testing.T) {
	req := require.New(t)

	collection := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	payToken := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	tokenId := big.NewInt(1)
	amount := big.NewInt(100)

	res, err := SolidityKeccak(
		[]string{"address", "address", "uint256", "uint256"},
		[]interface{}{collection, payToken, tokenId, amount},
	)
	req.NoError(err)

	packed := append([]byte{}, collection.Bytes()...)
	packed = append(packed, payToken.Bytes()...)
	packed = append(packed, common.LeftPadBytes(tokenId.Bytes(), 32)...)
	packed = append(packed, common.LeftPadBytes(amount.Bytes(), 32)...)
	req.Len(packed, 20+20+32+32)
	req.Equal(crypto.Keccak256(packed), res)

	// bytes is packed as is
	res, err = SolidityKeccak([]string{"bytes"}, []interface{}{[]byte{1, 2, 3}})
	req.NoError(err)
	req.Equal(crypto.Keccak256([]byte{1, 2, 3}), res)

	_, err = SolidityKeccak([]string{"uint256"}, []interface{}{big.NewInt(-1)})
	req.Error(err)

	_, err = SolidityKeccak([]string{"address"}, []interface{}{"0xaa"})
	req.Error(err)

	_, err = SolidityKeccak([]string{"uint8"}, []interface{}{uint8(1)})
	req.Error(err)

	_, err = SolidityKeccak([]string{"address", "bytes"}, []interface{}{collection})
	req.Error(err)
}
