package escrow

import "errors"

var (
	ErrNotOwner             = errors.New("caller is not the escrow owner")
	ErrUnauthorizedDeposit  = errors.New("caller may not deposit into this escrow")
	ErrUnauthorizedRelease  = errors.New("caller may not release this escrow")
	ErrAlreadyDeposited     = errors.New("escrow already deposited")
	ErrAlreadyReleased      = errors.New("escrow already released")
	ErrInvalidAmount        = errors.New("invalid escrow amount")
	ErrAssetNotInCustody    = errors.New("asset is not held by the escrow")
	ErrInvalidFeePercentage = errors.New("fee percentage out of range")
)
