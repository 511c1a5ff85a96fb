package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits every amount is kept at.
const Scale = 8

// Round brings an amount to Scale digits, half away from zero.
func Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(Scale)
}

const (
	CategorySend    = "send"
	CategoryReceive = "receive"
)

const (
	RequestCreated   = 0
	RequestSubmitted = 1
)

// Balance stages a BlockchainTransaction has already applied.
const (
	AppliedNone         = 0
	AppliedUnconfirmed  = 1
	AppliedConfirmation = 2
)

type Balance struct {
	Available decimal.Decimal `gorm:"type:numeric(24,8);not null" json:"available"`
	Locked    decimal.Decimal `gorm:"type:numeric(24,8);not null" json:"locked"`
}

type Address struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	OwnerID   *string   `gorm:"size:64;index" json:"ownerId"`
	Address   string    `gorm:"size:128;uniqueIndex;not null" json:"address"`
	Balance   Balance   `gorm:"embedded;embeddedPrefix:balance_" json:"balance"`
	IsEnabled bool      `gorm:"not null;index" json:"isEnabled"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TransactionRequest struct {
	ID                 string          `gorm:"primaryKey;size:36"`
	OwnerID            string          `gorm:"size:64;not null;index"`
	OwnerTransactionID string          `gorm:"size:128;not null"`
	From               string          `gorm:"size:128;not null"`
	To                 string          `gorm:"size:128;not null"`
	Amount             decimal.Decimal `gorm:"type:numeric(24,8);not null"`
	Fee                decimal.Decimal `gorm:"type:numeric(24,8);not null"`
	Status             int             `gorm:"not null"`
	TransactionHash    string          `gorm:"size:64;index"`
	Comment            string          `gorm:"type:text"`
	CommentTo          string          `gorm:"size:258;not null"` // from@to routing string
	SenderReserved     bool            `gorm:"not null"`
	RecipientReserved  bool            `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type BlockchainTransaction struct {
	ID           string           `gorm:"primaryKey;size:36"`
	TxID         string           `gorm:"size:64;not null;uniqueIndex:idx_txid_category"`
	Category     string           `gorm:"size:16;not null;uniqueIndex:idx_txid_category"`
	Address      string           `gorm:"size:128;not null;index"`
	Amount       decimal.Decimal  `gorm:"type:numeric(24,8);not null"`
	Fee          *decimal.Decimal `gorm:"type:numeric(24,8)"`
	Label        string           `gorm:"size:128"`
	BlockHash    string           `gorm:"size:64"`
	BlockHeight  int64
	BlockTime    int64
	Time         int64
	TimeReceived int64
	IsConfirmed  bool   `gorm:"not null"`
	AppliedStage int    `gorm:"not null;default:0"`
	To           string `gorm:"size:258"` // from@to routing string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Transaction struct {
	ID                   string          `gorm:"primaryKey;size:36"`
	OwnerID              *string         `gorm:"size:64;index"`
	OwnerTransactionID   *string         `gorm:"size:128"`
	Amount               decimal.Decimal `gorm:"type:numeric(24,8);not null"`
	IsConfirmed          bool            `gorm:"not null"`
	CreationNotified     bool            `gorm:"not null;index"`
	ConfirmationNotified bool            `gorm:"not null;index"`
	TransactionHash      string          `gorm:"size:64;not null;uniqueIndex:idx_address_hash"`
	Address              string          `gorm:"size:128;not null;uniqueIndex:idx_address_hash"`
	Timestamp            time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type Configuration struct {
	Key       string `gorm:"primaryKey;size:64"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

type AddressFilter struct {
	OwnerID  *string
	Address  string
	FreeOnly bool
	// Any includes disabled addresses.
	Any bool
}

type TransactionFilter struct {
	OwnerID *string
	Address string
}
