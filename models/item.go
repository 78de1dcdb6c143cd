package models

// CatalogItem represents a single catalog record as the client holds it.
// It is the decoded form of an [ItemDocument] together with the document's
// address in the remote collection.
type CatalogItem struct {
	// ID is the opaque identifier assigned by the collection service on
	// creation. It is immutable once assigned and is carried out-of-band
	// of the document body (URL path, snapshot entry address).
	ID string `json:"id"`

	// Name is the display name of the record. Non-empty and trimmed for
	// every item that passed write validation.
	Name string `json:"name"`

	// Price is the positive finite price of the record. The currency unit
	// is implicit.
	Price float64 `json:"price"`

	// Category is the record's category label. Non-empty and trimmed.
	Category string `json:"category"`

	// ImageURL optionally points at an image for the record.
	// An empty string means "no image".
	ImageURL string `json:"imageUrl"`
}

// ItemDocument is the wire shape of a record's body as the collection
// service exchanges it. The record identifier is not part of the document.
type ItemDocument struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	ImageURL string  `json:"imageUrl"`
}

// ItemPayload is a validated, write-ready field set: trimmed strings and a
// parsed positive price. It is produced only by the validators package.
type ItemPayload struct {
	Name     string
	Price    float64
	Category string
	ImageURL string
}

// Document converts the payload into its wire shape.
func (p ItemPayload) Document() ItemDocument {
	return ItemDocument{
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		ImageURL: p.ImageURL,
	}
}

// Snapshot is one complete point-in-time view of the remote collection,
// ordered by name ascending as the service emitted it.
type Snapshot struct {
	Items []CatalogItem
}
