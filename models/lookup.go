package models

import (
	"strconv"
	"time"

	"github.com/jinzhu/gorm"
)

// TimeLayout - how timestamps are rendered on screens and in exports
const TimeLayout = "2006-01-02 15:04:05"

// Gateway - dialer_gateway table
type Gateway struct {
	ID   int64  `gorm:"primary_key" json:"id"`
	Name string `gorm:"size:255" json:"name"`
}

// TableName -
func (Gateway) TableName() string {
	return "dialer_gateway"
}

// Campaign - dialer_campaign table
type Campaign struct {
	ID   int64  `gorm:"primary_key" json:"id"`
	Name string `gorm:"size:255" json:"name"`
}

// TableName -
func (Campaign) TableName() string {
	return "dialer_campaign"
}

// FormatTime -
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(TimeLayout)
}

func optionalID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}

// Names - id => label lookup on a small reference table
func Names(db *gorm.DB, table, column string, ids []int64) (map[int64]string, error) {

	res := make(map[int64]string)

	if len(ids) == 0 {
		return res, nil
	}

	rows, err := db.Table(table).Select("id, "+column).Where("id IN (?)", ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {

		var (
			id   int64
			name string
		)

		if err = rows.Scan(&id, &name); err != nil {
			return nil, err
		}

		res[id] = name
	}

	return res, rows.Err()
}

// IDs - distinct non-nil ids
func IDs(ids ...*int64) []int64 {

	var (
		seen = make(map[int64]bool)
		res  = make([]int64, 0, len(ids))
	)

	for _, id := range ids {
		if id == nil || seen[*id] {
			continue
		}
		seen[*id] = true
		res = append(res, *id)
	}

	return res
}
