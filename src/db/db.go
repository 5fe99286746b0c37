package db

import (
	"ctms/src/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to postgres and returns the handle services are constructed
// with. The handle is owned by the caller: opened once at process start,
// closed at shutdown, never cached at package level.
func Open(dsn string) (*gorm.DB, error) {
	handle, err := gorm.Open(postgres.Open(dsn))
	if err != nil {
		return nil, err
	}
	sqlDB, err := handle.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	return handle, nil
}

func Close(handle *gorm.DB) error {
	sqlDB, err := handle.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate keeps the schema in step at boot. Inventory and reference tables
// are migrated here but written only by the external seeding job.
func Migrate(handle *gorm.DB) error {
	return handle.AutoMigrate(
		&models.TravelRequisitionForm{},
		&models.TRFApproval{},
		&models.Airline{},
		&models.FlightInventory{},
		&models.Hotel{},
		&models.HotelRoomInventory{},
		&models.TravelBooking{},
		&models.FlightBooking{},
		&models.HotelBooking{},
		&models.City{},
		&models.Airport{},
	)
}
