package reports

import (
	"errors"
	"time"

	"dialeradmin/models"
)

// Report - what the call report screen shows
type Report struct {
	Filter  Filter
	Calls   []models.VoIPCall
	Total   int64
	Page    int
	Pages   int
	Daily   []DailyTotal // oldest day first
	Summary Summary
}

// Service - builds call reports from a Repository
type Service struct {
	Repo    Repository
	PerPage int
	Now     func() time.Time
}

// NewService -
func NewService(repo Repository, perPage int) *Service {

	if perPage <= 0 {
		perPage = 100
	}

	return &Service{Repo: repo, PerPage: perPage, Now: time.Now}
}

// Today - the default filter of the report screen
func (s *Service) Today() Filter {
	return Today(s.Now())
}

// Totals - daily rows (oldest first) and their summary
func (s *Service) Totals(f Filter) ([]DailyTotal, Summary, error) {

	if s.Repo == nil {
		return nil, Summary{}, errors.New("reports: repository not configured")
	}

	days, err := s.Repo.Daily(f)
	if err != nil {
		return nil, Summary{}, err
	}

	return Ascending(days), Summarize(days), nil
}

// Build - one page of the report for f, pages start at 1
func (s *Service) Build(f Filter, page int) (*Report, error) {

	if s.Repo == nil {
		return nil, errors.New("reports: repository not configured")
	}

	if page < 1 {
		page = 1
	}

	calls, total, err := s.Repo.List(f, (page-1)*s.PerPage, s.PerPage)
	if err != nil {
		return nil, err
	}

	daily, summary, err := s.Totals(f)
	if err != nil {
		return nil, err
	}

	pages := int((total + int64(s.PerPage) - 1) / int64(s.PerPage))
	if pages == 0 {
		pages = 1
	}

	return &Report{
		Filter:  f,
		Calls:   calls,
		Total:   total,
		Page:    page,
		Pages:   pages,
		Daily:   daily,
		Summary: summary,
	}, nil
}
