package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is stored as a JSON text column so the same model works on
// both sqlite and postgres.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case string:
		return json.Unmarshal([]byte(v), l)
	case []byte:
		return json.Unmarshal(v, l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
}

type Product struct {
	ID          uuid.UUID  `gorm:"primaryKey"      json:"id"`
	Name        string     `gorm:"not null"        json:"name"`
	Description string     `json:"description"`
	Price       int64      `gorm:"not null"        json:"price"` // whole rupees
	Stock       uint       `json:"stock"`
	Category    string     `gorm:"index"           json:"category"`
	Brand       string     `json:"brand,omitempty"`
	Color       string     `json:"color,omitempty"`
	Material    string     `json:"material,omitempty"`
	Sizes       StringList `gorm:"type:text"       json:"sizes"`
	Tags        StringList `gorm:"type:text"       json:"tags"`
	Images      StringList `gorm:"type:text"       json:"images"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Product) TableName() string { return "products" }

type User struct {
	ID        uuid.UUID `gorm:"primaryKey"       json:"id"`
	Phone     string    `gorm:"unique;not null"  json:"phone"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Role      string    `gorm:"not null"         json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (User) TableName() string { return "users" }

// OTPCode holds the bcrypt hash of a login code issued for a phone
// number. Rows are replaced on re-request and deleted on successful
// login.
type OTPCode struct {
	ID        uint      `gorm:"primaryKey"     json:"id"`
	Phone     string    `gorm:"index;not null" json:"phone"`
	CodeHash  string    `gorm:"not null"       json:"-"`
	ExpiresAt time.Time `gorm:"not null"       json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (OTPCode) TableName() string { return "otp_codes" }

// ProductDiscount tracks the discount mini-game for one (user, product)
// pair: the currently offered percent, how many of the three spins have
// been used, and whether the offer was accepted. The row is created on
// the first spin and deleted when the product's last cart line goes
// away, which re-opens the game.
type ProductDiscount struct {
	ID           uint      `gorm:"primaryKey"                               json:"id"`
	UserID       uuid.UUID `gorm:"uniqueIndex:idx_user_product_discount;not null" json:"user_id"`
	ProductID    uuid.UUID `gorm:"uniqueIndex:idx_user_product_discount;not null" json:"product_id"`
	Discount     int       `gorm:"not null"                                 json:"discount"`
	AttemptsUsed int       `gorm:"not null"                                 json:"attempts_used"`
	Accepted     bool      `gorm:"default:false"                            json:"accepted"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (ProductDiscount) TableName() string { return "product_discounts" }

// CartItem is one cart line. The (user, product, size) triple is the
// line key: adding the same product and size again bumps the quantity,
// a different size is a separate line. Name and UnitPrice are snapshots
// taken at add time; Discount, when set, is the percent accepted in the
// discount game at the time the line was created.
type CartItem struct {
	ID        uuid.UUID `gorm:"primaryKey"                              json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_user_product_size;not null" json:"user_id"`
	ProductID uuid.UUID `gorm:"uniqueIndex:idx_user_product_size;not null" json:"product_id"`
	Size      string    `gorm:"uniqueIndex:idx_user_product_size"       json:"size,omitempty"`
	Name      string    `gorm:"not null"                                json:"name"`
	UnitPrice int64     `gorm:"not null"                                json:"unit_price"`
	Quantity  uint      `gorm:"default:1;check:quantity>0"              json:"quantity"`
	Discount  *int      `json:"discount,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (CartItem) TableName() string { return "cart_items" }

type WishlistItem struct {
	ID        uuid.UUID `gorm:"primaryKey"                                json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_user_product_wish;not null" json:"user_id"`
	ProductID uuid.UUID `gorm:"uniqueIndex:idx_user_product_wish;not null" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (w *WishlistItem) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

func (WishlistItem) TableName() string { return "wishlist_items" }

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type PaymentMethod string

const (
	PaymentUPI  PaymentMethod = "upi"
	PaymentCash PaymentMethod = "cash"
)

// Order is an immutable snapshot of a checked-out cart. Everything but
// Status and PickedUpAt is frozen at creation time.
type Order struct {
	ID                uuid.UUID     `gorm:"primaryKey"     json:"id"`
	UserID            uuid.UUID     `gorm:"index;not null" json:"user_id"`
	CustomerName      string        `gorm:"not null"       json:"customer_name"`
	CustomerPhone     string        `gorm:"not null"       json:"customer_phone"`
	CustomerEmail     string        `json:"customer_email,omitempty"`
	PaymentMethod     PaymentMethod `gorm:"not null"       json:"payment_method"`
	UPIID             string        `json:"upi_id,omitempty"`
	Total             int64         `gorm:"not null"       json:"total"`
	Status            OrderStatus   `gorm:"not null;index" json:"status"`
	Items             []OrderItem   `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt         time.Time     `json:"created_at"`
	EstimatedPickupAt time.Time     `json:"estimated_pickup_at"`
	PickedUpAt        *time.Time    `json:"picked_up_at,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

func (Order) TableName() string { return "orders" }

type OrderItem struct {
	ID        uuid.UUID `gorm:"primaryKey"     json:"id"`
	OrderID   uuid.UUID `gorm:"index;not null" json:"order_id"`
	ProductID uuid.UUID `gorm:"not null"       json:"product_id"`
	Name      string    `gorm:"not null"       json:"name"`
	Size      string    `json:"size,omitempty"`
	UnitPrice int64     `gorm:"not null"       json:"unit_price"`
	Discount  *int      `json:"discount,omitempty"`
	Quantity  uint      `gorm:"not null"       json:"quantity"`
	LineTotal int64     `gorm:"not null"       json:"line_total"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (OrderItem) TableName() string { return "order_items" }
