// Package server provides the HTTP catalog service for stockroom.
package server

import (
	"github.com/go-playground/validator/v10"

	"github.com/thebtf/stockroom/internal/config"
	"github.com/thebtf/stockroom/internal/db/gorm"
)

// Request shapes per resource. Create requests carry every non-id field as
// required; update requests carry pointer fields so that omitted and
// supplied values can be told apart. Numeric create fields are pointers for
// the same reason: a literal 0 is a value, not an omission.

// SneakerCreateRequest is the create body for /sneakers/.
type SneakerCreateRequest struct {
	Brand string `json:"brand" validate:"required"`
	Model string `json:"model" validate:"required"`
	Price *int64 `json:"price" validate:"required"`
}

// SneakerUpdateRequest is the partial update body for /sneakers/{id}.
type SneakerUpdateRequest struct {
	Brand *string `json:"brand"`
	Model *string `json:"model"`
	Price *int64  `json:"price"`
}

func (r *SneakerUpdateRequest) columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if r.Brand != nil {
		cols["brand"] = *r.Brand
	}
	if r.Model != nil {
		cols["model"] = *r.Model
	}
	if r.Price != nil {
		cols["price"] = *r.Price
	}
	return cols
}

func newSneakerResource(store *gorm.Store, valid *validator.Validate, cfg *config.Config) *resource[gorm.Sneaker, SneakerCreateRequest, SneakerUpdateRequest] {
	return &resource[gorm.Sneaker, SneakerCreateRequest, SneakerUpdateRequest]{
		store:    gorm.NewCatalogStore[gorm.Sneaker](store, gorm.SneakerSchema),
		valid:    valid,
		noun:     "sneaker",
		pageSize: cfg.PageSize,
		maxPage:  cfg.MaxPageSize,
		fromCreate: func(req *SneakerCreateRequest) *gorm.Sneaker {
			return &gorm.Sneaker{Brand: req.Brand, Model: req.Model, Price: *req.Price}
		},
		updateColumns: (*SneakerUpdateRequest).columns,
	}
}

// EnergyDrinkCreateRequest is the create body for /energy-drinks/.
type EnergyDrinkCreateRequest struct {
	Brand string `json:"brand" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Price *int64 `json:"price" validate:"required"`
}

// EnergyDrinkUpdateRequest is the partial update body for /energy-drinks/{id}.
type EnergyDrinkUpdateRequest struct {
	Brand *string `json:"brand"`
	Name  *string `json:"name"`
	Price *int64  `json:"price"`
}

func (r *EnergyDrinkUpdateRequest) columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if r.Brand != nil {
		cols["brand"] = *r.Brand
	}
	if r.Name != nil {
		cols["name"] = *r.Name
	}
	if r.Price != nil {
		cols["price"] = *r.Price
	}
	return cols
}

func newEnergyDrinkResource(store *gorm.Store, valid *validator.Validate, cfg *config.Config) *resource[gorm.EnergyDrink, EnergyDrinkCreateRequest, EnergyDrinkUpdateRequest] {
	return &resource[gorm.EnergyDrink, EnergyDrinkCreateRequest, EnergyDrinkUpdateRequest]{
		store:    gorm.NewCatalogStore[gorm.EnergyDrink](store, gorm.EnergyDrinkSchema),
		valid:    valid,
		noun:     "energy drink",
		pageSize: cfg.PageSize,
		maxPage:  cfg.MaxPageSize,
		fromCreate: func(req *EnergyDrinkCreateRequest) *gorm.EnergyDrink {
			return &gorm.EnergyDrink{Brand: req.Brand, Name: req.Name, Price: *req.Price}
		},
		updateColumns: (*EnergyDrinkUpdateRequest).columns,
	}
}

// VapeCreateRequest is the create body for /vapes/.
type VapeCreateRequest struct {
	Brand      string   `json:"brand" validate:"required"`
	Model      string   `json:"model" validate:"required"`
	Price      *float64 `json:"price" validate:"required"`
	PowerLevel *float64 `json:"power_level" validate:"required"`
}

// VapeUpdateRequest is the partial update body for /vapes/{id}.
type VapeUpdateRequest struct {
	Brand      *string  `json:"brand"`
	Model      *string  `json:"model"`
	Price      *float64 `json:"price"`
	PowerLevel *float64 `json:"power_level"`
}

func (r *VapeUpdateRequest) columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if r.Brand != nil {
		cols["brand"] = *r.Brand
	}
	if r.Model != nil {
		cols["model"] = *r.Model
	}
	if r.Price != nil {
		cols["price"] = *r.Price
	}
	if r.PowerLevel != nil {
		cols["power_level"] = *r.PowerLevel
	}
	return cols
}

func newVapeResource(store *gorm.Store, valid *validator.Validate, cfg *config.Config) *resource[gorm.Vape, VapeCreateRequest, VapeUpdateRequest] {
	return &resource[gorm.Vape, VapeCreateRequest, VapeUpdateRequest]{
		store:    gorm.NewCatalogStore[gorm.Vape](store, gorm.VapeSchema),
		valid:    valid,
		noun:     "vape",
		pageSize: cfg.PageSize,
		maxPage:  cfg.MaxPageSize,
		fromCreate: func(req *VapeCreateRequest) *gorm.Vape {
			return &gorm.Vape{Brand: req.Brand, Model: req.Model, Price: *req.Price, PowerLevel: *req.PowerLevel}
		},
		updateColumns: (*VapeUpdateRequest).columns,
	}
}
