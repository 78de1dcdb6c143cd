package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-catalog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() models.ItemDocument {
	return models.ItemDocument{
		Name:     "Widget",
		Price:    12.5,
		Category: "Tools",
		ImageURL: "http://img/widget.png",
	}
}

func TestNewCatalogItemValidator(t *testing.T) {
	v := NewCatalogItemValidator()
	require.NotNil(t, v)
}

func TestCatalogItemValidator_Dispatch(t *testing.T) {
	v := NewCatalogItemValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, 42)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("document value and pointer", func(t *testing.T) {
		doc := validDocument()
		assert.NoError(t, v.Validate(ctx, doc))
		assert.NoError(t, v.Validate(ctx, &doc))
	})

	t.Run("catalog item value and pointer", func(t *testing.T) {
		item := models.CatalogItem{ID: "id-1", Name: "Widget", Price: 1, Category: "Tools"}
		assert.NoError(t, v.Validate(ctx, item))
		assert.NoError(t, v.Validate(ctx, &item))
	})
}

func TestCatalogItemValidator_Document(t *testing.T) {
	v := NewCatalogItemValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*models.ItemDocument)
		wantErr error
	}{
		{
			name:    "valid",
			mutate:  func(*models.ItemDocument) {},
			wantErr: nil,
		},
		{
			name:    "empty name",
			mutate:  func(d *models.ItemDocument) { d.Name = "  " },
			wantErr: ErrMissingRequiredField,
		},
		{
			name:    "zero price",
			mutate:  func(d *models.ItemDocument) { d.Price = 0 },
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "negative price",
			mutate:  func(d *models.ItemDocument) { d.Price = -5 },
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "empty category",
			mutate:  func(d *models.ItemDocument) { d.Category = "" },
			wantErr: ErrMissingRequiredField,
		},
		{
			name:    "empty image url is allowed",
			mutate:  func(d *models.ItemDocument) { d.ImageURL = "" },
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(&doc)

			err := v.Validate(ctx, doc)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCatalogItemValidator_FieldScoping(t *testing.T) {
	v := NewCatalogItemValidator()
	ctx := context.Background()

	// Документ невалиден целиком, но проверяется только категория.
	doc := models.ItemDocument{Category: "Tools"}
	assert.NoError(t, v.Validate(ctx, doc, FieldCategory))

	assert.ErrorIs(t, v.Validate(ctx, doc, "unknown"), ErrUnknownField)
}

func TestCatalogItemValidator_CatalogItemID(t *testing.T) {
	v := NewCatalogItemValidator()
	ctx := context.Background()

	item := models.CatalogItem{Name: "Widget", Price: 1, Category: "Tools"}
	require.ErrorIs(t, v.Validate(ctx, item), ErrInvalidID)

	assert.NoError(t, v.Validate(ctx, item, FieldName, FieldPrice, FieldCategory))
}
