package specification

import "gorm.io/gorm"

// Specification defines the interface for composable query predicates.
type Specification interface {
	Apply(db *gorm.DB) *gorm.DB
}
