package db_models

import (
	"database/sql/driver"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ImageRefs is the ordered list of image references attached to a POI. It is
// a native text[] on Postgres and an array literal in a text column on other
// dialects; both use the lib/pq array codec.
type ImageRefs []string

func (r ImageRefs) Value() (driver.Value, error) {
	if r == nil {
		return pq.StringArray{}.Value()
	}
	return pq.StringArray(r).Value()
}

func (r *ImageRefs) Scan(src interface{}) error {
	var arr pq.StringArray
	if err := arr.Scan(src); err != nil {
		return err
	}
	*r = ImageRefs(arr)
	return nil
}

func (ImageRefs) GormDataType() string {
	return "text"
}

func (ImageRefs) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "text[]"
	}
	return "text"
}
