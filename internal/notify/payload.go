package notify

import (
	"time"

	"coinledger/internal/repository"
)

type Flag struct {
	IsNotified bool `json:"isNotified"`
}

type Notifications struct {
	Creation     Flag `json:"creation"`
	Confirmation Flag `json:"confirmation"`
}

// Payload is the body delivered to the owner's notification endpoint.
type Payload struct {
	ID                 string        `json:"id"`
	OwnerID            *string       `json:"ownerId"`
	OwnerTransactionID *string       `json:"ownerTransactionId"`
	Amount             string        `json:"amount"`
	IsConfirmed        bool          `json:"isConfirmed"`
	TransactionHash    string        `json:"transactionHash"`
	Address            string        `json:"address"`
	Timestamp          time.Time     `json:"timestamp"`
	Notifications      Notifications `json:"notifications"`
}

func NewPayload(tx repository.Transaction) Payload {
	return Payload{
		ID:                 tx.ID,
		OwnerID:            tx.OwnerID,
		OwnerTransactionID: tx.OwnerTransactionID,
		Amount:             tx.Amount.StringFixed(repository.Scale),
		IsConfirmed:        tx.IsConfirmed,
		TransactionHash:    tx.TransactionHash,
		Address:            tx.Address,
		Timestamp:          tx.Timestamp,
		Notifications: Notifications{
			Creation:     Flag{IsNotified: tx.CreationNotified},
			Confirmation: Flag{IsNotified: tx.ConfirmationNotified},
		},
	}
}
