package dto

import "stockcheck/internal/domain"

type MovementLine struct {
	ProductID int
	Quantity  int
}

type LineVerdict struct {
	ProductID int
	Quantity  int
	Result    domain.ValidationResult
}

type BatchVerdict struct {
	Direction domain.Direction
	Valid     bool
	Lines     []LineVerdict
}
