package admin

import (
	"net/url"
	"strings"
	"time"

	"dialeradmin/utils"

	"github.com/jinzhu/gorm"
	"github.com/uniplaces/carbon"
)

// DateChoices - period filters of date fields
var DateChoices = []Choice{
	{Value: "", Label: "Any date"},
	{Value: "today", Label: "Today"},
	{Value: "past7", Label: "Past 7 days"},
	{Value: "month", Label: "This month"},
	{Value: "year", Label: "This year"},
}

// Period - [from, to) of a date filter value relative to now
func Period(value string, now time.Time) (time.Time, time.Time, bool) {

	today := carbon.NewCarbon(now).StartOfDay()

	switch value {
	case "today":
		return today.Time, today.Time.AddDate(0, 0, 1), true
	case "past7":
		return today.Time.AddDate(0, 0, -7), today.Time.AddDate(0, 0, 1), true
	case "month":
		start := today.StartOfMonth().Time
		return start, start.AddDate(0, 1, 0), true
	case "year":
		start := today.StartOfYear().Time
		return start, start.AddDate(1, 0, 0), true
	}

	return time.Time{}, time.Time{}, false
}

// Search - case insensitive substring match on the search fields
func (m *ModelAdmin) Search(db *gorm.DB, q string) *gorm.DB {

	q = strings.TrimSpace(q)

	if q == "" || len(m.SearchFields) == 0 {
		return db
	}

	var (
		clauses = make([]string, 0, len(m.SearchFields))
		args    = make([]interface{}, 0, len(m.SearchFields))
		like    = "%" + strings.ToLower(q) + "%"
	)

	for _, f := range m.SearchFields {
		clauses = append(clauses, "LOWER("+f+") LIKE ?")
		args = append(args, like)
	}

	return db.Where(strings.Join(clauses, " OR "), args...)
}

// Filter - list filters present in params, unknown params and values
// outside a select widget's choices are ignored
func (m *ModelAdmin) Filter(db *gorm.DB, params url.Values, now time.Time) *gorm.DB {

	for _, f := range m.ListFilter {

		v := params.Get(f)
		if v == "" {
			continue
		}

		if m.IsDate(f) {
			if from, to, ok := Period(v, now); ok {
				db = db.Where(f+" >= ? AND "+f+" < ?", from, to)
			}
			continue
		}

		if w := m.Widget(f); w.Type == "select" && !w.has(v) {
			continue
		}

		db = db.Where(f+" = ?", v)
	}

	return db
}

// Order - configured ordering, "-field" sorts descending
func (m *ModelAdmin) Order(db *gorm.DB) *gorm.DB {

	for _, o := range m.Ordering {
		if strings.HasPrefix(o, "-") {
			db = db.Order(strings.TrimPrefix(o, "-") + " desc")
			continue
		}
		db = db.Order(o)
	}

	return db
}

// Paginate - pages start at 1
func (m *ModelAdmin) Paginate(db *gorm.DB, page int) *gorm.DB {

	if page < 1 {
		page = 1
	}

	return db.Offset((page - 1) * m.PerPage()).Limit(m.PerPage())
}

// FilterSpec - one sidebar filter of the change list
type FilterSpec struct {
	Field   string
	Choices []Choice
}

// FilterSpecs - sidebar filters with the current selection marked. Values
// of plain fields come from values(field).
func (m *ModelAdmin) FilterSpecs(params url.Values, values func(field string) ([]string, error)) ([]FilterSpec, error) {

	specs := make([]FilterSpec, 0, len(m.ListFilter))

	for _, f := range m.ListFilter {

		var (
			current = params.Get(f)
			choices []Choice
		)

		if m.IsDate(f) {
			for _, c := range DateChoices {
				c.Selected = c.Value == current
				choices = append(choices, c)
			}
			specs = append(specs, FilterSpec{Field: f, Choices: choices})
			continue
		}

		choices = append(choices, Choice{Value: "", Label: "All", Selected: current == ""})

		vals, err := values(f)
		if err != nil {
			return nil, err
		}

		for _, v := range vals {
			choices = append(choices, Choice{Value: v, Label: m.label(f, v), Selected: v == current})
		}

		specs = append(specs, FilterSpec{Field: f, Choices: choices})
	}

	return specs, nil
}

func (w Widget) has(value string) bool {

	for _, c := range w.Choices {
		if c.Value == value {
			return true
		}
	}

	return false
}

func (m *ModelAdmin) label(field, value string) string {

	for _, c := range m.Widget(field).Choices {
		if c.Value == value {
			return c.Label
		}
	}

	return value
}

// Distinct - distinct values of a column, for FilterSpecs
func Distinct(db *gorm.DB, table string, limit int) func(field string) ([]string, error) {

	return func(field string) ([]string, error) {

		var vals []string

		err := db.Table(table).
			Where(field+" IS NOT NULL").
			Order(field).
			Limit(limit).
			Pluck("DISTINCT "+field, &vals).Error

		return utils.Compact(vals), err
	}
}

// Query - params with one key replaced, for filter and page links
func Query(params url.Values, key, value string) string {

	out := url.Values{}

	for k, v := range params {
		out[k] = v
	}

	if value == "" {
		out.Del(key)
	} else {
		out.Set(key, value)
	}

	if enc := out.Encode(); enc != "" {
		return "?" + enc
	}

	return "?"
}
