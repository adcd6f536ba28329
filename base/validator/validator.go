package validator

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/x-xyz/otc-market/base/ethereum"
	"github.com/x-xyz/otc-market/domain"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// IsValidSignature returns is a 0x hex encoded 65 bytes signature or not
func IsValidSignature(signature string) bool {
	_, err := ethereum.DecodeSignature(signature)
	return err == nil
}

// New returns a validator with the custom tags registered
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("signature", func(fl validator.FieldLevel) bool {
		return IsValidSignature(fl.Field().String())
	})
	_ = v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return ToDomainError(err)
	}
	return nil
}

// ToDomainError maps the first failed field to its validation error
func ToDomainError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return xerrors.Errorf("%s: %w", err, domain.ErrBadParamInput)
	}
	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return xerrors.Errorf("%s: %w", fe.Field(), domain.ErrMissingField)
	case "address", "eth_addr":
		return xerrors.Errorf("%s: %w", fe.Field(), domain.ErrInvalidAddress)
	case "signature":
		return xerrors.Errorf("%s: %w", fe.Field(), domain.ErrInvalidSignature)
	}
	return xerrors.Errorf("%s: %w", fe.Field(), domain.ErrBadParamInput)
}
