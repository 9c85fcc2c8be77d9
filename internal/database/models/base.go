package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// BaseModel provides common fields for all models with integer primary keys
type BaseModel struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Int64List is a JSONB-backed list of entity ids. Used for scrim participant
// selections, which are roster snapshots rather than foreign keys.
type Int64List []int64

// Value implements driver.Valuer for JSONB storage
func (l Int64List) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]int64{})
	}
	return json.Marshal([]int64(l))
}

// Scan implements sql.Scanner for JSONB storage
func (l *Int64List) Scan(value interface{}) error {
	if value == nil {
		*l = Int64List{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for Int64List: %T", value)
	}
	return json.Unmarshal(data, (*[]int64)(l))
}

// Contains reports whether id is present in the list
func (l Int64List) Contains(id int64) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}
