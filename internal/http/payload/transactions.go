package payload

import (
	"time"

	"coinledger/internal/ledger"
	"coinledger/internal/repository"

	"github.com/jellydator/validation"
)

type CreateTransactionRequest struct {
	OwnerTransactionID string `json:"ownerTransactionId"`
	From               string `json:"from"`
	To                 string `json:"to"`
	Amount             string `json:"amount"`
	Comment            string `json:"comment"`
}

func (c CreateTransactionRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.OwnerTransactionID, validation.Required, validation.Length(1, 128)),
		validation.Field(&c.From, validation.Required, validation.Length(1, 128)),
		validation.Field(&c.To, validation.Required, validation.Length(1, 128)),
		validation.Field(&c.Amount, append(amountRules, positiveAmount)...),
		validation.Field(&c.Comment, validation.Length(0, 1024)),
	)
}

func (c CreateTransactionRequest) ToPayment(ownerID string) ledger.PaymentRequest {
	return ledger.PaymentRequest{
		OwnerID:            ownerID,
		OwnerTransactionID: c.OwnerTransactionID,
		From:               c.From,
		To:                 c.To,
		Amount:             parseAmount(c.Amount),
		Comment:            c.Comment,
	}
}

type TransactionRequestResponse struct {
	ID                 string    `json:"id"`
	OwnerID            string    `json:"ownerId"`
	OwnerTransactionID string    `json:"ownerTransactionId"`
	From               string    `json:"from"`
	To                 string    `json:"to"`
	Amount             string    `json:"amount"`
	Fee                string    `json:"fee"`
	Status             int       `json:"status"`
	TransactionHash    string    `json:"transactionHash,omitempty"`
	Comment            string    `json:"comment,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func NewTransactionRequestResponse(r repository.TransactionRequest) TransactionRequestResponse {
	return TransactionRequestResponse{
		ID:                 r.ID,
		OwnerID:            r.OwnerID,
		OwnerTransactionID: r.OwnerTransactionID,
		From:               r.From,
		To:                 r.To,
		Amount:             formatAmount(r.Amount),
		Fee:                formatAmount(r.Fee),
		Status:             r.Status,
		TransactionHash:    r.TransactionHash,
		Comment:            r.Comment,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func NewTransactionRequestsResponse(requests []repository.TransactionRequest) []TransactionRequestResponse {
	out := make([]TransactionRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewTransactionRequestResponse(r))
	}
	return out
}

type TransactionResponse struct {
	ID                 string    `json:"id"`
	OwnerID            *string   `json:"ownerId"`
	OwnerTransactionID *string   `json:"ownerTransactionId"`
	Amount             string    `json:"amount"`
	IsConfirmed        bool      `json:"isConfirmed"`
	TransactionHash    string    `json:"transactionHash"`
	Address            string    `json:"address"`
	Timestamp          time.Time `json:"timestamp"`
}

func NewTransactionsResponse(txs []repository.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, TransactionResponse{
			ID:                 tx.ID,
			OwnerID:            tx.OwnerID,
			OwnerTransactionID: tx.OwnerTransactionID,
			Amount:             formatAmount(tx.Amount),
			IsConfirmed:        tx.IsConfirmed,
			TransactionHash:    tx.TransactionHash,
			Address:            tx.Address,
			Timestamp:          tx.Timestamp,
		})
	}
	return out
}
