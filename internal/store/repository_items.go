package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-catalog-keeper/internal/logger"
	"github.com/MKhiriev/go-catalog-keeper/models"
)

// itemRepository is the SQL-backed implementation of [ItemRepository]. It
// executes all catalog item CRUD operations against the "items" table using
// the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (item id, affected row counts, etc.).
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAllItems retrieves every stored catalog item in list order.
//
// Returns the items or an error if the query fails, a row cannot be scanned,
// or an iteration error is detected after the result set is exhausted.
func (r *itemRepository) GetAllItems(ctx context.Context) ([]models.CatalogItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.DB.buildSelectItemsQuery()
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.GetAllItems").
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.GetAllItems").
			Msg("failed to execute query for getting all items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.CatalogItem, 0, 50)

	for rows.Next() {
		var item models.CatalogItem

		scanErr := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Price,
			&item.Category,
			&item.ImageURL,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "itemRepository.GetAllItems").
				Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "itemRepository.GetAllItems").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// GetItem retrieves one catalog item by id.
//
// Returns [ErrItemNotFound] when the row does not exist.
func (r *itemRepository) GetItem(ctx context.Context, id string) (models.CatalogItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.DB.buildSelectItemByIDQuery(id)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.GetItem").
			Str("item_id", id).
			Msg("failed to create query")
		return models.CatalogItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.CatalogItem
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&item.ID,
		&item.Name,
		&item.Price,
		&item.Category,
		&item.ImageURL,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CatalogItem{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.GetItem").
			Str("item_id", id).
			Msg("failed to scan item row")
		return models.CatalogItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// SaveItem inserts a new catalog item row.
//
// Returns [ErrItemNotSaved] when the INSERT affects no rows.
func (r *itemRepository) SaveItem(ctx context.Context, item models.CatalogItem) error {
	log := logger.FromContext(ctx)

	query, args, err := r.DB.buildInsertItemQuery(item)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.SaveItem").
			Str("item_id", item.ID).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.SaveItem").
			Str("item_id", item.ID).
			Msg("failed to insert item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotSaved
	}

	return nil
}

// UpdateItem replaces the document fields of an existing row.
//
// Returns [ErrItemNotFound] when the UPDATE matches no rows.
func (r *itemRepository) UpdateItem(ctx context.Context, item models.CatalogItem) error {
	log := logger.FromContext(ctx)

	query, args, err := r.DB.buildUpdateItemQuery(item)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.UpdateItem").
			Str("item_id", item.ID).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.UpdateItem").
			Str("item_id", item.ID).
			Msg("failed to update item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// DeleteItem removes a row by id.
//
// Returns [ErrItemNotFound] when the DELETE matches no rows.
func (r *itemRepository) DeleteItem(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.DB.buildDeleteItemQuery(id)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.DeleteItem").
			Str("item_id", id).
			Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "itemRepository.DeleteItem").
			Str("item_id", id).
			Msg("failed to delete item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}
