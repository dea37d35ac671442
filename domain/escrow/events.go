package escrow

// event names recorded to the event store on ledger transitions
const (
	EventOrderDeposited   = "OrderEscrowDeposited"
	EventOrderReleased    = "OrderEscrowReleased"
	EventAuctionDeposited = "AuctionEscrowDeposited"
	EventAuctionReleased  = "AuctionEscrowReleased"
	EventConfigUpdated    = "EscrowConfigUpdated"
)
