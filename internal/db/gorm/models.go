// Package gorm provides GORM-based database operations for stockroom.
package gorm

// GORM Models
//
// All three catalog tables share the same shape: a store-assigned immutable
// id plus a fixed set of required scalar fields. There are no relationships
// between them.

// Sneaker represents one sneaker record.
type Sneaker struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Brand string `gorm:"type:text;index;not null" json:"brand"`
	Model string `gorm:"type:text;not null" json:"model"`
	Price int64  `gorm:"not null" json:"price"`
}

func (Sneaker) TableName() string { return "sneakers" }

// EnergyDrink represents one energy drink record.
type EnergyDrink struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Brand string `gorm:"type:text;index;not null" json:"brand"`
	Name  string `gorm:"type:text;not null" json:"name"`
	Price int64  `gorm:"not null" json:"price"`
}

func (EnergyDrink) TableName() string { return "energy_drinks" }

// Vape represents one vape record.
type Vape struct {
	ID         int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Brand      string  `gorm:"type:text;index;not null" json:"brand"`
	Model      string  `gorm:"type:text;not null" json:"model"`
	Price      float64 `gorm:"type:real;not null" json:"price"`
	PowerLevel float64 `gorm:"type:real;not null;column:power_level" json:"power_level"`
}

func (Vape) TableName() string { return "vapes" }

// Schema describes one catalog resource for the generic store and query
// builder: its table, the columns reachable from list criteria, and the
// closed set of sortable columns. Keeping the sortable set explicit avoids
// resolving arbitrary client strings against struct fields.
type Schema struct {
	Noun       string            // singular resource noun, used in messages
	Table      string            // table name
	BrandCol   string            // equality filter column
	PriceCol   string            // range filter column
	SearchCols []string          // OR-combined substring search columns
	Sortable   map[string]string // sort_by value -> column name
}

// SneakerSchema describes the sneakers resource.
var SneakerSchema = Schema{
	Noun:       "sneaker",
	Table:      "sneakers",
	BrandCol:   "brand",
	PriceCol:   "price",
	SearchCols: []string{"brand", "model"},
	Sortable: map[string]string{
		"id":    "id",
		"brand": "brand",
		"model": "model",
		"price": "price",
	},
}

// EnergyDrinkSchema describes the energy_drinks resource.
var EnergyDrinkSchema = Schema{
	Noun:       "energy drink",
	Table:      "energy_drinks",
	BrandCol:   "brand",
	PriceCol:   "price",
	SearchCols: []string{"brand", "name"},
	Sortable: map[string]string{
		"id":    "id",
		"brand": "brand",
		"name":  "name",
		"price": "price",
	},
}

// VapeSchema describes the vapes resource.
var VapeSchema = Schema{
	Noun:       "vape",
	Table:      "vapes",
	BrandCol:   "brand",
	PriceCol:   "price",
	SearchCols: []string{"brand", "model"},
	Sortable: map[string]string{
		"id":          "id",
		"brand":       "brand",
		"model":       "model",
		"price":       "price",
		"power_level": "power_level",
	},
}
