package daemon

import "github.com/shopspring/decimal"

// Entry is one wallet movement as listed by listsinceblock or gettransaction.
type Entry struct {
	TxID          string           `json:"txid"`
	Address       string           `json:"address"`
	Category      string           `json:"category"`
	Amount        decimal.Decimal  `json:"amount"`
	Fee           *decimal.Decimal `json:"fee,omitempty"`
	Confirmations *int64           `json:"confirmations,omitempty"`
	Trusted       *bool            `json:"trusted,omitempty"`
	BlockHash     string           `json:"blockhash"`
	BlockHeight   int64            `json:"blockheight"`
	BlockTime     int64            `json:"blocktime"`
	Time          int64            `json:"time"`
	TimeReceived  int64            `json:"timereceived"`
	Label         string           `json:"label"`
	Comment       string           `json:"comment"`
	To            string           `json:"to"`
}

type TransactionDetail struct {
	TxID          string          `json:"txid"`
	Amount        decimal.Decimal `json:"amount"`
	Fee           decimal.Decimal `json:"fee"`
	Confirmations int64           `json:"confirmations"`
	BlockHash     string          `json:"blockhash"`
	BlockHeight   int64           `json:"blockheight"`
	Time          int64           `json:"time"`
	Comment       string          `json:"comment"`
	To            string          `json:"to"`
	Details       []Entry         `json:"details"`
}

type sinceBlock struct {
	Transactions []Entry `json:"transactions"`
	LastBlock    string  `json:"lastblock"`
}

type receivedByAddress struct {
	Address string `json:"address"`
}

type smartFee struct {
	FeeRate *decimal.Decimal `json:"feerate"`
	Errors  []string         `json:"errors"`
}
