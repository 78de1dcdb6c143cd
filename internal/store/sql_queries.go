package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-catalog-keeper/models"
)

// itemColumns is the column list shared by every item SELECT.
var itemColumns = []string{"id", "name", "price", "category", "image_url"}

func (db *DB) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// buildSelectItemsQuery builds the full list query in the canonical order:
// name ascending, byte-wise, ties broken by id.
func (db *DB) buildSelectItemsQuery() (string, []any, error) {
	return db.builder().
		Select(itemColumns...).
		From("items").
		OrderBy(db.listOrder).
		ToSql()
}

func (db *DB) buildSelectItemByIDQuery(id string) (string, []any, error) {
	return db.builder().
		Select(itemColumns...).
		From("items").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildInsertItemQuery(item models.CatalogItem) (string, []any, error) {
	return db.builder().
		Insert("items").
		Columns(itemColumns...).
		Values(item.ID, item.Name, item.Price, item.Category, item.ImageURL).
		ToSql()
}

func (db *DB) buildUpdateItemQuery(item models.CatalogItem) (string, []any, error) {
	return db.builder().
		Update("items").
		Set("name", item.Name).
		Set("price", item.Price).
		Set("category", item.Category).
		Set("image_url", item.ImageURL).
		Where(sq.Eq{"id": item.ID}).
		ToSql()
}

func (db *DB) buildDeleteItemQuery(id string) (string, []any, error) {
	return db.builder().
		Delete("items").
		Where(sq.Eq{"id": id}).
		ToSql()
}
