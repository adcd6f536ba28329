package main

import (
	"crypto/ecdsa"
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/pflag"
	"golang.org/x/xerrors"

	"github.com/x-xyz/otc-market/base/ethereum"
	"github.com/x-xyz/otc-market/domain"
	"github.com/x-xyz/otc-market/domain/trade"
)

const usage = `usage:
  signer trade    --key <hex> --collection <addr> --payment-token <addr> --token-id <n> --amount <n>
  signer approval --key <hex> --taker-sig <0x sig>

the key falls back to the SIGNER_KEY environment variable
`

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return xerrors.New("missing subcommand")
	}

	var (
		sig []byte
		err error
	)
	switch args[0] {
	case "trade":
		sig, err = signTrade(args[1:])
	case "approval":
		sig, err = signApproval(args[1:])
	default:
		return xerrors.Errorf("unknown subcommand %q", args[0])
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, hexutil.Encode(sig))
	return nil
}

func signTrade(args []string) ([]byte, error) {
	fs := pflag.NewFlagSet("trade", pflag.ContinueOnError)
	key := fs.String("key", "", "hex encoded private key of the taker")
	collection := fs.String("collection", "", "NFT collection address")
	payToken := fs.String("payment-token", "", "ERC-20 payment token address")
	tokenId := fs.String("token-id", "", "token id")
	amount := fs.String("amount", "", "amount in the payment token's smallest unit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	terms := trade.Terms{
		CollectionAddress:   domain.Address(*collection),
		PaymentTokenAddress: domain.Address(*payToken),
	}
	for _, a := range []domain.Address{terms.CollectionAddress, terms.PaymentTokenAddress} {
		if !a.IsValid() {
			return nil, xerrors.Errorf("%q: %w", a, domain.ErrInvalidAddress)
		}
	}
	var err error
	if terms.TokenId, err = domain.ParseUint256(*tokenId); err != nil {
		return nil, xerrors.Errorf("token-id: %w", err)
	}
	if terms.Amount, err = domain.ParseUint256(*amount); err != nil {
		return nil, xerrors.Errorf("amount: %w", err)
	}

	pk, err := privateKey(*key)
	if err != nil {
		return nil, err
	}
	return ethereum.SignPersonal(terms.Digest(), pk)
}

func signApproval(args []string) ([]byte, error) {
	fs := pflag.NewFlagSet("approval", pflag.ContinueOnError)
	key := fs.String("key", "", "hex encoded private key of the listing owner")
	takerSig := fs.String("taker-sig", "", "signature of the buyer or the top bidder")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	sig, err := trade.Signature(*takerSig).Bytes()
	if err != nil {
		return nil, xerrors.Errorf("taker-sig: %w", err)
	}

	pk, err := privateKey(*key)
	if err != nil {
		return nil, err
	}
	return ethereum.SignPersonal(trade.ApprovalDigest(sig), pk)
}

func privateKey(key string) (*ecdsa.PrivateKey, error) {
	if key == "" {
		key = os.Getenv("SIGNER_KEY")
	}
	return ethereum.ParsePrivateKey(key)
}
