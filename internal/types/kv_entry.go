package types

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry backs the SQL flavor of the key/value store: one row per named
// snapshot ("cart", "wishlist").
type KVEntry struct {
	Name      string         `gorm:"primaryKey;column:name" json:"name"`
	Value     datatypes.JSON `gorm:"column:value" json:"value"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entry"
}
