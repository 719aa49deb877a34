package reports

import (
	"time"

	"dialeradmin/models"

	"github.com/jinzhu/gorm"
	"github.com/uniplaces/carbon"
)

// Filter - the VoIP call row set a report screen and its export work on.
// It is what the session keeps between the list and the export request.
type Filter struct {
	From        *time.Time `json:"from,omitempty"`
	To          *time.Time `json:"to,omitempty"`
	Disposition *int       `json:"disposition,omitempty"`
	CallerID    string     `json:"callerid,omitempty"`
}

// Today - calls started since the beginning of the day of now
func Today(now time.Time) Filter {
	from := carbon.NewCarbon(now).StartOfDay().Time
	return Filter{From: &from}
}

// IsZero - no condition set
func (f Filter) IsZero() bool {
	return f.From == nil && f.To == nil && f.Disposition == nil && f.CallerID == ""
}

// Apply - adds the filter conditions to a dialer_cdr query
func (f Filter) Apply(db *gorm.DB) *gorm.DB {

	if f.From != nil {
		db = db.Where("starting_date >= ?", *f.From)
	}

	if f.To != nil {
		db = db.Where("starting_date <= ?", *f.To)
	}

	if f.Disposition != nil {
		db = db.Where("disposition = ?", *f.Disposition)
	}

	if f.CallerID != "" {
		db = db.Where("callerid = ?", f.CallerID)
	}

	return db
}

// Match - in-process equivalent of Apply
func (f Filter) Match(v *models.VoIPCall) bool {

	if f.From != nil && v.StartingDate.Before(*f.From) {
		return false
	}

	if f.To != nil && v.StartingDate.After(*f.To) {
		return false
	}

	if f.Disposition != nil && v.Disposition != *f.Disposition {
		return false
	}

	if f.CallerID != "" && v.CallerID != f.CallerID {
		return false
	}

	return true
}
