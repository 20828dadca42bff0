package queries

import (
	"time"

	"sandwich-storefront/internal/domain/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)

type SandwichView struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type IngredientView struct {
	ID        uuid.UUID
	Name      string
	Price     decimal.Decimal
	Type      string
	TypeLabel string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BuilderStepView lists the options of one custom sandwich step.
type BuilderStepView struct {
	Step     int
	Title    string
	Type     string
	Multi    bool
	Required bool
	Options  []*IngredientView
}

type PromoCodeView struct {
	ID              uuid.UUID
	Code            string
	Discount        decimal.Decimal
	DeliveryAddress string
	DeliveryCity    string
	DeliveryZipcode string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

type PaymentView struct {
	OrderID     uuid.UUID
	OrderNumber string
	Stage       order.PaymentStage
	Progress    int
	Amount      decimal.Decimal
	// Redirect is "confirmation" once the payment completed.
	Redirect string
}
