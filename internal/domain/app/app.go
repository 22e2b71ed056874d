package app

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/merojugx/mero/internal/shared/biztime"
	"github.com/merojugx/mero/internal/shared/id"
)

type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
	BillingOneTime BillingPeriod = "one_time"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// App is a marketplace catalog entry.
type App struct {
	id            string
	name          string
	slug          string
	description   string
	price         decimal.Decimal
	billingPeriod BillingPeriod
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

func NewApp(name, slug, description string, price decimal.Decimal, period BillingPeriod) (*App, error) {
	if name == "" || slug == "" {
		return nil, fmt.Errorf("app name and slug are required")
	}
	if err := validatePrice(price); err != nil {
		return nil, err
	}
	if period == "" {
		period = BillingMonthly
	}

	now := biztime.NowUTC()
	return &App{
		id:            id.New(),
		name:          name,
		slug:          slug,
		description:   description,
		price:         price.Round(2),
		billingPeriod: period,
		status:        StatusActive,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructApp rebuilds an app from persistence
func ReconstructApp(
	id, name, slug, description string,
	price decimal.Decimal,
	period BillingPeriod,
	status Status,
	createdAt, updatedAt time.Time,
) *App {
	return &App{
		id:            id,
		name:          name,
		slug:          slug,
		description:   description,
		price:         price,
		billingPeriod: period,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (a *App) ID() string                   { return a.id }
func (a *App) Name() string                 { return a.name }
func (a *App) Slug() string                 { return a.slug }
func (a *App) Description() string          { return a.description }
func (a *App) Price() decimal.Decimal       { return a.price }
func (a *App) BillingPeriod() BillingPeriod { return a.billingPeriod }
func (a *App) Status() Status               { return a.status }
func (a *App) CreatedAt() time.Time         { return a.createdAt }
func (a *App) UpdatedAt() time.Time         { return a.updatedAt }

func (a *App) IsActive() bool {
	return a.status == StatusActive
}

// ChangePrice sets a new price rounded to cents.
func (a *App) ChangePrice(price decimal.Decimal) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	a.price = price.Round(2)
	a.updatedAt = biztime.NowUTC()
	return nil
}

func validatePrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}
