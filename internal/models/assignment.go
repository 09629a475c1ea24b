package models

import "time"

// MerchantFeeAssignment links a merchant to a fee structure. Assignments are
// append-only; the latest CreatedAt for a merchant is the effective one.
type MerchantFeeAssignment struct {
	ID             string    `gorm:"primaryKey;type:uuid" json:"id"`
	MerchantID     string    `gorm:"not null;index:idx_assignment_merchant_created,priority:1" json:"merchant_id"`
	FeeStructureID string    `gorm:"type:uuid;not null;index" json:"fee_structure_id"`
	AssignedBy     string    `json:"assigned_by,omitempty"`
	CreatedAt      time.Time `gorm:"not null;index:idx_assignment_merchant_created,priority:2" json:"created_at"`
}
