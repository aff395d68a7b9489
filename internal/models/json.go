package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// JSON is a wrapper around gorm.io/datatypes.JSON to allow for custom data type mapping
type JSON struct {
	datatypes.JSON
}

// NewJSON wraps already-encoded JSON bytes
func NewJSON(raw []byte) JSON {
	return JSON{JSON: datatypes.JSON(raw)}
}

// Value promotes the embedded JSON's Value method
func (j JSON) Value() (driver.Value, error) {
	return j.JSON.Value()
}

// Scan promotes the embedded JSON's Scan method
func (j *JSON) Scan(value interface{}) error {
	return j.JSON.Scan(value)
}

// GormDBDataType ensures the correct data type is used for each database driver.
// This resolves the issue where MSSQL does not support the 'json' data type.
func (JSON) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}

// StringList stores a list of labels (symptoms, triggers, side effects) as a
// JSON array so the column stays portable across the supported drivers.
type StringList []string

// Value implements the driver.Valuer interface. A nil list is stored as an
// empty array; GORM also infers the column type by calling Value on the zero
// value, so it must never return nil.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		s = StringList{}
	}
	b, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("StringList: unsupported column type %T", value)
	}

	if len(data) == 0 {
		*s = nil
		return nil
	}

	return json.Unmarshal(data, (*[]string)(s))
}

// GormDBDataType maps the list column the same way as JSON
func (StringList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return JSON{}.GormDBDataType(db, field)
}
