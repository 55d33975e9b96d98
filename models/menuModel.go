package models

const (
	CategoryHeavyFood = "heavy_food"
	CategorySnack     = "snack"
	CategoryNoodles   = "noodles"
	CategoryDrink     = "drink"
)

type MenuItem struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description"`
	Price       int    `json:"price" validate:"required,min=0"`
	Category    string `json:"category" validate:"required,eq=heavy_food|eq=snack|eq=noodles|eq=drink"`
	Image       string `json:"image"`
	Stock       int    `json:"stock" validate:"min=0"`
	IsAvailable bool   `json:"is_available"`
}
