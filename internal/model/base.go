package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// ── PostgreSQL JSONB map type ──

// WeekdayOverrides maps a weekday name (Monday..Sunday) to a period count,
// stored as JSONB. Implements the GORM Scanner/Valuer interfaces.
type WeekdayOverrides map[string]int

// Scan parses the JSONB payload returned by PostgreSQL.
func (o *WeekdayOverrides) Scan(src interface{}) error {
	if src == nil {
		*o = nil
		return nil
	}
	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("WeekdayOverrides.Scan: unsupported type %T", src)
	}
	return json.Unmarshal(b, o)
}

// Value serializes the map to JSONB.
func (o WeekdayOverrides) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	return json.Marshal(o)
}

// BaseModel carries the audit timestamps embedded by all entities.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
