// Package admin holds the declarative change-list scaffolding the back-office
// screens are configured with: field layout, list columns, filters, ordering
// and search.
package admin

import (
	"fmt"
	"strings"

	"dialeradmin/models"
	"dialeradmin/utils"
)

// DefaultPerPage - rows per change-list page
const DefaultPerPage = 100

// Object - a row the admin screens can show
type Object interface {
	PK() int64
	Value(field string) string
}

// Fieldset - a group of fields on the change form
type Fieldset struct {
	Name    string
	Classes []string
	Fields  []string
}

// Collapsed -
func (f Fieldset) Collapsed() bool {
	return utils.InSlice("collapse", f.Classes)
}

// Choice - a select or filter option
type Choice struct {
	Value    string
	Label    string
	Selected bool
}

// Widget - how a field is edited
type Widget struct {
	Type    string // text, number, datetime, textarea, select
	Choices []Choice
}

// ModelAdmin - admin configuration of one model
type ModelAdmin struct {
	AppLabel         string
	ModelName        string
	VerboseName      string
	Fieldsets        []Fieldset
	ListDisplay      []string
	ListDisplayLinks []string
	ListFilter       []string
	DateFields       []string
	Ordering         []string
	SearchFields     []string
	ListPerPage      int
	CanAdd           bool
	ReadOnly         bool
	Widgets          map[string]Widget
}

// URL - change-list path
func (m *ModelAdmin) URL() string {
	return fmt.Sprintf("/admin/%s/%s/", m.AppLabel, m.ModelName)
}

// ObjectURL - change form path of one row
func (m *ModelAdmin) ObjectURL(o Object) string {
	return fmt.Sprintf("%s%d/", m.URL(), o.PK())
}

// Title -
func (m *ModelAdmin) Title() string {
	if m.VerboseName != "" {
		return m.VerboseName
	}
	return strings.Title(strings.Replace(m.ModelName, "_", " ", -1))
}

// IsLink - column rendered as a link to the change form
func (m *ModelAdmin) IsLink(field string) bool {
	return utils.InSlice(field, m.ListDisplayLinks)
}

// IsDate - date field filtered by period
func (m *ModelAdmin) IsDate(field string) bool {
	return utils.InSlice(field, m.DateFields)
}

// PerPage -
func (m *ModelAdmin) PerPage() int {
	if m.ListPerPage <= 0 {
		return DefaultPerPage
	}
	return m.ListPerPage
}

// Widget - widget of a field, text when not configured
func (m *ModelAdmin) Widget(field string) Widget {
	if w, ok := m.Widgets[field]; ok {
		return w
	}
	return Widget{Type: "text"}
}

// HasAddPermission - CanAdd false denies everybody, superusers included
func (m *ModelAdmin) HasAddPermission(u *models.User) bool {
	if !m.CanAdd || m.ReadOnly {
		return false
	}
	return u.CanUseAdmin()
}

// HasChangePermission -
func (m *ModelAdmin) HasChangePermission(u *models.User) bool {
	if m.ReadOnly {
		return false
	}
	return u.CanUseAdmin()
}

// HasDeletePermission -
func (m *ModelAdmin) HasDeletePermission(u *models.User) bool {
	return m.HasChangePermission(u)
}

// Site - registry of the admin screens
type Site struct {
	Title  string
	models []*ModelAdmin
}

// NewSite -
func NewSite(title string) *Site {
	return &Site{Title: title}
}

// Register -
func (s *Site) Register(m *ModelAdmin) *ModelAdmin {
	s.models = append(s.models, m)
	return m
}

// Models - registered screens in registration order
func (s *Site) Models() []*ModelAdmin {
	return s.models
}
