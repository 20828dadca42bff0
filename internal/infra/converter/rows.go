package converter

import (
	"time"

	"sandwich-storefront/internal/domain/catalog"
	"sandwich-storefront/internal/domain/promo"
	"sandwich-storefront/internal/domain/user"
	"sandwich-storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// Column lists match the Scan order below; queries select them verbatim.
const (
	SandwichColumns   = "id, name, description, price, image, created_at, updated_at"
	IngredientColumns = "id, name, price, type, image, created_at, updated_at"
	PromoCodeColumns  = "id, code, discount, delivery_address, delivery_city, delivery_zipcode, active, created_at, updated_at"
	UserColumns       = "id, email, password_hash, role, is_active, last_login, created_at, updated_at"
)

type Scanner interface {
	Scan(dest ...any) error
}

func ScanSandwich(row Scanner) (*catalog.Sandwich, error) {
	var (
		s     catalog.Sandwich
		price pgtype.Numeric
	)
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &price, &s.Image, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	d, err := pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, err
	}
	s.Price = d
	return &s, nil
}

func ScanIngredient(row Scanner) (*catalog.Ingredient, error) {
	var (
		in    catalog.Ingredient
		price pgtype.Numeric
		typ   string
		image pgtype.Text
	)
	if err := row.Scan(&in.ID, &in.Name, &price, &typ, &image, &in.CreatedAt, &in.UpdatedAt); err != nil {
		return nil, err
	}
	d, err := pgconv.DecimalFromNumeric(price)
	if err != nil {
		return nil, err
	}
	in.Price = d
	in.Type = catalog.IngredientType(typ)
	in.Image = pgconv.StringFromPgtype(image)
	return &in, nil
}

func ScanPromoCode(row Scanner) (*promo.PromoCode, error) {
	var (
		p        promo.PromoCode
		discount pgtype.Numeric
	)
	if err := row.Scan(
		&p.ID, &p.Code, &discount,
		&p.DeliveryAddress.Street, &p.DeliveryAddress.City, &p.DeliveryAddress.Zipcode,
		&p.Active, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	d, err := pgconv.DecimalFromNumeric(discount)
	if err != nil {
		return nil, err
	}
	p.Discount = d
	return &p, nil
}

// UserRow keeps the raw columns; the read side exposes them without the domain type.
type UserRow struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLogin    pgtype.Timestamptz
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func ScanUser(row Scanner) (*UserRow, error) {
	var u UserRow
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.LastLogin, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (u *UserRow) LastLoginAt() *time.Time {
	if !u.LastLogin.Valid {
		return nil
	}
	t := pgconv.TimeFromPgtype(u.LastLogin)
	return &t
}

// Domain rebuilds the entity; invalid stored values fail loudly.
func (u *UserRow) Domain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}
	return user.Reconstruct(u.ID, email, u.PasswordHash, role, u.LastLoginAt(), u.IsActive, u.CreatedAt, u.UpdatedAt), nil
}
