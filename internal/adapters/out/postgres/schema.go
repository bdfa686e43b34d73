package postgres

import (
	"fulfillment/internal/adapters/out/postgres/catalogrepo"
	"fulfillment/internal/adapters/out/postgres/eventrepo"
	"fulfillment/internal/adapters/out/postgres/ndrrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/remittancerepo"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"

	"gorm.io/gorm"
)

// Models lists every table of the shipping core in dependency order.
func Models() []any {
	return []any{
		&orderrepo.OrderDTO{},
		&catalogrepo.WarehouseDTO{},
		&catalogrepo.RateCardDTO{},
		&shipmentrepo.ShipmentDTO{},
		&ndrrepo.CaseDTO{},
		&ndrrepo.TransitionDTO{},
		&remittancerepo.RecordDTO{},
		&eventrepo.CarrierEventDTO{},
		&eventrepo.OutboxDTO{},
	}
}

// Migrate creates or alters the tables to match the DTOs.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
