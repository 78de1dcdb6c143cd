package validators

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-catalog-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// They double as the human-readable field labels in validation errors.
const (
	// FieldID targets the server-assigned identifier of a catalog item.
	FieldID = "id"

	// FieldName targets the display name of a catalog item.
	FieldName = "name"

	// FieldPrice targets the price of a catalog item.
	FieldPrice = "price"

	// FieldCategory targets the category label of a catalog item.
	FieldCategory = "category"

	// FieldImageURL targets the optional image address of a catalog item.
	FieldImageURL = "imageUrl"
)

// ValidateForm converts raw form text into a validated [models.ItemPayload].
//
// All inputs are trimmed of surrounding whitespace before any check. Name,
// price and category are required; image URL may be empty. The price must
// parse as a finite number strictly greater than zero.
//
// Validation stops at the first failing field, in form order: name, price,
// category. On failure the zero payload is returned together with an error
// that names the offending field and wraps the matching sentinel.
func ValidateForm(rawName, rawPrice, rawCategory, rawImageURL string) (models.ItemPayload, error) {
	name := strings.TrimSpace(rawName)
	priceText := strings.TrimSpace(rawPrice)
	category := strings.TrimSpace(rawCategory)
	imageURL := strings.TrimSpace(rawImageURL)

	if name == "" {
		return models.ItemPayload{}, fmt.Errorf("%s: %w", FieldName, ErrMissingRequiredField)
	}
	if priceText == "" {
		return models.ItemPayload{}, fmt.Errorf("%s: %w", FieldPrice, ErrMissingRequiredField)
	}

	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil {
		return models.ItemPayload{}, fmt.Errorf("%s: %w", FieldPrice, ErrInvalidPrice)
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return models.ItemPayload{}, fmt.Errorf("%s: %w", FieldPrice, ErrInvalidPrice)
	}

	if category == "" {
		return models.ItemPayload{}, fmt.Errorf("%s: %w", FieldCategory, ErrMissingRequiredField)
	}

	return models.ItemPayload{
		Name:     name,
		Price:    price,
		Category: category,
		ImageURL: imageURL,
	}, nil
}
