package validators

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-catalog-keeper/models"
)

// CatalogItemValidator implements the Validator interface for the
// catalog-item-related domain models: ItemDocument and CatalogItem.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type CatalogItemValidator struct {
}

// NewCatalogItemValidator constructs a new CatalogItemValidator
// and returns it as the Validator interface.
func NewCatalogItemValidator() Validator {
	return &CatalogItemValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.ItemDocument / *models.ItemDocument
//   - models.CatalogItem / *models.CatalogItem
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every document field is validated.
func (v *CatalogItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ItemDocument:
		return v.validateDocument(ctx, value, fields...)
	case *models.ItemDocument:
		return v.validateDocument(ctx, *value, fields...)

	case models.CatalogItem:
		return v.validateCatalogItem(ctx, value, fields...)
	case *models.CatalogItem:
		return v.validateCatalogItem(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateDocument validates an item document as received on a write request.
//
// Default validated fields (when none specified): Name, Price, Category.
// The image URL is optional and never checked.
//
// Returns the first encountered validation error or nil.
func (v *CatalogItemValidator) validateDocument(_ context.Context, doc models.ItemDocument, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPrice, FieldCategory}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(doc.Name) == "" {
				return fmt.Errorf("%s: %w", FieldName, ErrMissingRequiredField)
			}
		case FieldPrice:
			if math.IsNaN(doc.Price) || math.IsInf(doc.Price, 0) || doc.Price <= 0 {
				return fmt.Errorf("%s: %w", FieldPrice, ErrInvalidPrice)
			}
		case FieldCategory:
			if strings.TrimSpace(doc.Category) == "" {
				return fmt.Errorf("%s: %w", FieldCategory, ErrMissingRequiredField)
			}
		case FieldImageURL:
			// optional field, always valid
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCatalogItem validates a full item including its identifier.
//
// Default validated fields (when none specified): ID, Name, Price, Category.
func (v *CatalogItemValidator) validateCatalogItem(ctx context.Context, item models.CatalogItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldPrice, FieldCategory}
	}

	docFields := make([]string, 0, len(fields))
	for _, f := range fields {
		if f == FieldID {
			if item.ID == "" {
				return fmt.Errorf("%s: %w", FieldID, ErrInvalidID)
			}
			continue
		}
		docFields = append(docFields, f)
	}

	if len(docFields) == 0 {
		return nil
	}

	doc := models.ItemDocument{
		Name:     item.Name,
		Price:    item.Price,
		Category: item.Category,
		ImageURL: item.ImageURL,
	}

	return v.validateDocument(ctx, doc, docFields...)
}
