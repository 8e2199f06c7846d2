package models

import "time"

// PlaceholderImageURL is shown for products stored without an image.
const PlaceholderImageURL = "https://placehold.co/600x400.png"

type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// DisplayImageURL returns the stored image URL, or the placeholder when empty.
func (p Product) DisplayImageURL() string {
	if p.ImageURL == "" {
		return PlaceholderImageURL
	}
	return p.ImageURL
}
