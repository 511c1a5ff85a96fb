package payload

import (
	"time"

	"coinledger/internal/repository"
)

type BalanceResponse struct {
	Available string `json:"available"`
	Locked    string `json:"locked"`
}

func NewBalanceResponse(balance repository.Balance) BalanceResponse {
	return BalanceResponse{
		Available: formatAmount(balance.Available),
		Locked:    formatAmount(balance.Locked),
	}
}

type AddressResponse struct {
	ID        string          `json:"id"`
	OwnerID   *string         `json:"ownerId"`
	Address   string          `json:"address"`
	Balance   BalanceResponse `json:"balance"`
	IsEnabled bool            `json:"isEnabled"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func NewAddressResponse(a repository.Address) AddressResponse {
	return AddressResponse{
		ID:        a.ID,
		OwnerID:   a.OwnerID,
		Address:   a.Address,
		Balance:   NewBalanceResponse(a.Balance),
		IsEnabled: a.IsEnabled,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func NewAddressesResponse(addresses []repository.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, NewAddressResponse(a))
	}
	return out
}
