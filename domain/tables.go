package domain

// Table is a mongo collection name
type Table string

const (
	TableAuctions       Table = "auctions"
	TableHeldBids       Table = "heldBids"
	TableOrderEscrows   Table = "orderEscrows"
	TableAuctionEscrows Table = "auctionEscrows"
	TableEscrowConfigs  Table = "escrowConfigs"
	TableAssets         Table = "assets"
	TableWallets        Table = "wallets"
	TableMarketUsers    Table = "marketUsers"
	TableListings       Table = "listings"
	TableMarketOrders   Table = "marketOrders"
	TableEvents         Table = "events"
	TableHealthChecks   Table = "healthChecks"
)
