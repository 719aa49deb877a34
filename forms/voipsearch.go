package forms

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"dialeradmin/models/constants/disposition"
	"dialeradmin/reports"

	"github.com/uniplaces/carbon"
)

// DateLayout - search form date inputs
const DateLayout = "2006-01-02"

// StatusAll - search over every disposition
const StatusAll = "all"

// VoipSearchForm - search form of the call report
type VoipSearchForm struct {
	FromDate time.Time `form:"from_date" json:"from_date" time_format:"2006-01-02"`
	ToDate   time.Time `form:"to_date" json:"to_date" time_format:"2006-01-02"`
	Status   string    `form:"status" json:"status" binding:"omitempty,max=12"`
	CallerID string    `form:"callerid" json:"callerid" binding:"omitempty,max=120"`
}

// Filter - the report filter the submitted form asks for. A form with no
// condition at all falls back to reports.Today(now).
func (f *VoipSearchForm) Filter(now time.Time) (reports.Filter, error) {

	var out reports.Filter

	if !f.FromDate.IsZero() {
		from := carbon.NewCarbon(f.FromDate).StartOfDay().Time
		out.From = &from
	}

	if !f.ToDate.IsZero() {
		to := carbon.NewCarbon(f.ToDate).EndOfDay().Time
		out.To = &to
	}

	if out.From != nil && out.To != nil && out.To.Before(*out.From) {
		return reports.Filter{}, fmt.Errorf("to_date %s is before from_date %s",
			f.ToDate.Format(DateLayout), f.FromDate.Format(DateLayout))
	}

	if status := strings.TrimSpace(f.Status); status != "" && status != StatusAll {

		code, err := strconv.Atoi(status)
		if err != nil || !disposition.Valid(code) {
			return reports.Filter{}, fmt.Errorf("unknown status %q", status)
		}

		out.Disposition = &code
	}

	out.CallerID = strings.TrimSpace(f.CallerID)

	if out.IsZero() {
		return reports.Today(now), nil
	}

	return out, nil
}

// StatusChoices - select options of the status input, "all" first
func StatusChoices() []disposition.Choice {
	return append([]disposition.Choice{{Value: StatusAll, Label: "ALL"}}, disposition.Choices()...)
}
