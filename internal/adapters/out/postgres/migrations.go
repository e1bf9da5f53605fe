package postgres

import (
	"logistics/internal/adapters/out/postgres/assemblyrepo"
	"logistics/internal/adapters/out/postgres/batchrepo"
	"logistics/internal/adapters/out/postgres/containerrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/warehouserepo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO represents the staff accounts the notification read queries
// against. Accounts are provisioned externally; the application only reads
// this table.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string
	Email string
	Role  string `gorm:"index"`
}

// TableName specifies the database table name for staff accounts.
func (UserDTO) TableName() string {
	return "users"
}

// Migrate creates or updates the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&batchrepo.BatchDTO{},
		&containerrepo.ContainerDTO{},
		&containerrepo.SubcaseDTO{},
		&containerrepo.ToolDTO{},
		&warehouserepo.SparePartDTO{},
		&warehouserepo.StorageDTO{},
		&assemblyrepo.MontageDTO{},
		&UserDTO{},
	)
}
