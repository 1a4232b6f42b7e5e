// Package types provides type definitions for structured data used throughout the ats-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// ElementKind classifies one parsed unit of a resume document.
type ElementKind string

// Element kinds produced by the document-ingestion layer.
const (
	KindHeading ElementKind = "heading"
	KindBullet  ElementKind = "bullet"
	KindTable   ElementKind = "table"
	KindImage   ElementKind = "image"
	KindText    ElementKind = "text"
)

// ContentElement is one parsed unit of a resume in document reading order.
// The sequence order matters: bullet-to-heading association depends on
// positional adjacency. Elements are read-only once validated.
type ContentElement struct {
	Kind     ElementKind `json:"type" validate:"required,oneof=heading bullet table image text"`
	Content  string      `json:"content"`
	FontSize *float64    `json:"font_size" validate:"omitempty,gt=0"`
	Page     int         `json:"page" validate:"omitempty,min=1"`
}

// Validate validates the ContentElement using the validator.
func (e *ContentElement) Validate() error {
	validate := validator.New()
	return validate.Struct(e)
}
