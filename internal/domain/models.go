package domain

// Product is one catalog record, parsed from a single CSV feed row.
// Records are immutable after ingestion; a re-fetch replaces the whole list.
type Product struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int    `json:"price"` // whole IQD, no minor unit
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Stock       int    `json:"stock"`
	Featured    bool   `json:"featured"`
	Views       int    `json:"views,omitempty"` // only set when the feed carries a views column
}

// CartItem is one cart line, keyed by product id. Name/price/image/category
// are copied at add time and never re-synced with the catalog.
type CartItem struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int    `json:"price"`
	ImageURL string `json:"image_url"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// CatalogSnapshot is the durable catalog cache payload.
type CatalogSnapshot struct {
	Products  []Product `json:"products"`
	Timestamp int64     `json:"timestamp"` // epoch millis of the successful fetch
}
