// Package model defines the catalog records shared by every layer.
//
// Users, categories and products are loaded once and never mutated.
// EnrichedProduct is the only derived record; it is built by the join in
// package catalog and is read-only afterwards.
package model

// User owns categories.
type User struct {
	ID   int    `json:"id" yaml:"id" validate:"gt=0"`
	Name string `json:"name" yaml:"name" validate:"required"`
	Sex  Sex    `json:"sex" yaml:"sex" validate:"oneof=m f"`
}

// Category groups products and belongs to exactly one user.
// OwnerID is expected to reference a User, but a dangling value is tolerated.
type Category struct {
	ID      int    `json:"id" yaml:"id" validate:"gt=0"`
	Title   string `json:"title" yaml:"title" validate:"required"`
	Icon    string `json:"icon" yaml:"icon"`
	OwnerID int    `json:"ownerId" yaml:"ownerId"`
}

// Product is a catalog entry. CategoryID may not match any Category.
type Product struct {
	ID         int    `json:"id" yaml:"id" validate:"gt=0"`
	Name       string `json:"name" yaml:"name" validate:"required"`
	CategoryID int    `json:"categoryId" yaml:"categoryId"`
}

// EnrichedProduct is a Product joined with its Category and that
// category's owner. A nil Category or User means the reference did not
// resolve; such a product never matches an id-based filter on that field.
type EnrichedProduct struct {
	Product
	Category *Category `json:"category"`
	User     *User     `json:"user"`
}

// CategoryFilter is one entry of the per-category selection list.
type CategoryFilter struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Selected bool   `json:"isSelected"`
}
