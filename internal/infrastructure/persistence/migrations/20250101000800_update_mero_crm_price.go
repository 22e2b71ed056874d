package migrations

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const meroCRMSlug = "mero-crm"

var (
	meroCRMPriceBefore = decimal.RequireFromString("25.00")
	meroCRMPriceAfter  = decimal.RequireFromString("30.00")
)

func setMeroCRMPrice(tx *gorm.DB, price decimal.Decimal) error {
	return tx.Table("apps").
		Where("slug = ?", meroCRMSlug).
		Updates(map[string]any{"price": price, "updated_at": time.Now().UTC()}).
		Error
}

func upMeroCRMPrice(tx *gorm.DB) error {
	return setMeroCRMPrice(tx, meroCRMPriceAfter)
}

func downMeroCRMPrice(tx *gorm.DB) error {
	return setMeroCRMPrice(tx, meroCRMPriceBefore)
}
