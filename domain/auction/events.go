package auction

// event names recorded to the event store on lifecycle transitions
const (
	EventAuctionCreated   = "AuctionCreated"
	EventBidPlaced        = "BidPlaced"
	EventAuctionFinalized = "AuctionFinalized"
	EventAuctionCancelled = "AuctionCancelled"
	EventBidWithdrawn     = "BidWithdrawn"
	EventBidRefunded      = "BidRefunded"

	EventUpdatedStartTime           = "UpdatedAuctionStartTime"
	EventUpdatedEndTime             = "UpdatedAuctionEndTime"
	EventUpdatedMinimumSellingPrice = "UpdatedMinimumSellingPrice"
)
