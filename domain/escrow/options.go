package escrow

import "github.com/asoebi/goapi/domain"

type OrderEscrowFindAllOptions struct {
	Buyer  *domain.Address
	Seller *domain.Address
	State  *State
}

type OrderEscrowFindAllOptionsFunc func(*OrderEscrowFindAllOptions) error

func GetOrderEscrowFindAllOptions(opts ...OrderEscrowFindAllOptionsFunc) (OrderEscrowFindAllOptions, error) {
	res := OrderEscrowFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func OrderEscrowWithBuyer(buyer domain.Address) OrderEscrowFindAllOptionsFunc {
	return func(options *OrderEscrowFindAllOptions) error {
		options.Buyer = &buyer
		return nil
	}
}

func OrderEscrowWithSeller(seller domain.Address) OrderEscrowFindAllOptionsFunc {
	return func(options *OrderEscrowFindAllOptions) error {
		options.Seller = &seller
		return nil
	}
}

func OrderEscrowWithState(state State) OrderEscrowFindAllOptionsFunc {
	return func(options *OrderEscrowFindAllOptions) error {
		options.State = &state
		return nil
	}
}

type AuctionEscrowFindAllOptions struct {
	Seller *domain.Address
	Winner *domain.Address
	State  *State
}

type AuctionEscrowFindAllOptionsFunc func(*AuctionEscrowFindAllOptions) error

func GetAuctionEscrowFindAllOptions(opts ...AuctionEscrowFindAllOptionsFunc) (AuctionEscrowFindAllOptions, error) {
	res := AuctionEscrowFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func AuctionEscrowWithSeller(seller domain.Address) AuctionEscrowFindAllOptionsFunc {
	return func(options *AuctionEscrowFindAllOptions) error {
		options.Seller = &seller
		return nil
	}
}

func AuctionEscrowWithWinner(winner domain.Address) AuctionEscrowFindAllOptionsFunc {
	return func(options *AuctionEscrowFindAllOptions) error {
		options.Winner = &winner
		return nil
	}
}

func AuctionEscrowWithState(state State) AuctionEscrowFindAllOptionsFunc {
	return func(options *AuctionEscrowFindAllOptions) error {
		options.State = &state
		return nil
	}
}
