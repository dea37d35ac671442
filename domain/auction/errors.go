package auction

import "errors"

var (
	// authorization
	ErrInvalidOwner = errors.New("invalid owner")

	// validation at creation/update time
	ErrInvalidSellingPrice = errors.New("invalid selling price")
	ErrInvalidStartTime    = errors.New("invalid start time")
	ErrInvalidEndTime      = errors.New("invalid end time")

	// state
	ErrAlreadyExists     = errors.New("auction already exists")
	ErrAlreadyFinalized  = errors.New("auction already finalized")
	ErrAlreadyStarted    = errors.New("auction already started")
	ErrIsActive          = errors.New("auction is still active")
	ErrNoBid             = errors.New("no bid placed")
	ErrInvalidWinningBid = errors.New("invalid winning bid")

	// time gates
	ErrInvalidAuction = errors.New("invalid auction")
	ErrTimeLock       = errors.New("time lock not elapsed")

	// bidding
	ErrInvalidBid   = errors.New("invalid bid")
	ErrDidNotOutBid = errors.New("did not outbid current highest bid")

	// held-bid claims
	ErrNoClaim       = errors.New("no held bid claim")
	ErrNotRefundable = errors.New("held bid is not refundable")
)
