package payload

import (
	"errors"
	"regexp"

	"coinledger/internal/repository"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

var amountPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// formatAmount renders amounts with exactly eight fractional digits.
func formatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(repository.Scale)
}

func parseAmount(raw string) decimal.Decimal {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return repository.Round(amount)
}

var positiveAmount = validation.By(func(value any) error {
	raw, _ := value.(string)
	if raw == "" {
		return nil
	}
	if !parseAmount(raw).IsPositive() {
		return errors.New("must be greater than zero")
	}
	return nil
})

var amountRules = []validation.Rule{
	validation.Required,
	validation.Match(amountPattern).Error("must be a decimal number"),
}
