package payload

import (
	"coinledger/internal/ledger"
	"coinledger/internal/repository"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

// ReconcileRequest carries one wallet movement in the daemon's
// listsinceblock shape.
type ReconcileRequest struct {
	TxID          string  `json:"txid"`
	Category      string  `json:"category"`
	Address       string  `json:"address"`
	Amount        string  `json:"amount"`
	Fee           *string `json:"fee,omitempty"`
	Confirmations int64   `json:"confirmations"`
	BlockHash     string  `json:"blockhash"`
	BlockHeight   int64   `json:"blockheight"`
	BlockTime     int64   `json:"blocktime"`
	Time          int64   `json:"time"`
	TimeReceived  int64   `json:"timereceived"`
	To            string  `json:"to"`
	Label         string  `json:"label"`
}

func (r ReconcileRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.TxID, validation.Required, validation.Length(1, 64)),
		validation.Field(&r.Category, validation.Required, validation.In(repository.CategorySend, repository.CategoryReceive)),
		validation.Field(&r.Address, validation.Required),
		validation.Field(&r.Amount, amountRules...),
		validation.Field(&r.Fee, validation.NilOrNotEmpty, validation.Match(amountPattern)),
		validation.Field(&r.Confirmations, validation.Min(int64(0))),
	)
}

func (r ReconcileRequest) ToEvent() ledger.ChainEvent {
	var fee *decimal.Decimal
	if r.Fee != nil {
		parsed := parseAmount(*r.Fee)
		fee = &parsed
	}

	return ledger.ChainEvent{
		TxID:          r.TxID,
		Category:      r.Category,
		Address:       r.Address,
		Amount:        parseAmount(r.Amount),
		Fee:           fee,
		Confirmations: r.Confirmations,
		BlockHash:     r.BlockHash,
		BlockHeight:   r.BlockHeight,
		BlockTime:     r.BlockTime,
		Time:          r.Time,
		TimeReceived:  r.TimeReceived,
		To:            r.To,
		Label:         r.Label,
	}
}
