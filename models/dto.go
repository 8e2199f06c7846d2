package models

// ProductForm is the raw add-product submission. Price stays textual until
// validation so that a malformed number is reported as a field error.
type ProductForm struct {
	Name        string `json:"name" schema:"name" validate:"min=3"`
	Description string `json:"description" schema:"description" validate:"min=10"`
	Price       string `json:"price" schema:"price" validate:"positive_price"`
	ImageURL    string `json:"imageUrl" schema:"imageUrl" validate:"image_url"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type DuplicateGroup struct {
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}
