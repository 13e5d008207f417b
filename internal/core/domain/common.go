package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// MasterStatus is the lifecycle state shared by all master entities
// (Product, Worker, Supplier). Masters are never hard-deleted; their
// lifecycle ends with a flip to INACTIVE.
type MasterStatus string

const (
	StatusActive   MasterStatus = "ACTIVE"
	StatusInactive MasterStatus = "INACTIVE"
)

// Direction indicates whether money or stock moves in or out.
type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

// PaymentMode is the channel a cash movement went through.
type PaymentMode string

const (
	ModeCash  PaymentMode = "CASH"
	ModeBkash PaymentMode = "BKASH"
	ModeNagad PaymentMode = "NAGAD"
	ModeBank  PaymentMode = "BANK"
	ModeOther PaymentMode = "OTHER"
)
