package reports

import (
	"sort"
	"sync"

	"dialeradmin/models"
)

// MemoryRepo is an in-memory Repository for tests and local development.
type MemoryRepo struct {
	mu sync.Mutex

	Calls []models.VoIPCall
}

// NewMemoryRepo -
func NewMemoryRepo(calls ...models.VoIPCall) *MemoryRepo {
	return &MemoryRepo{Calls: calls}
}

// Add -
func (r *MemoryRepo) Add(calls ...models.VoIPCall) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Calls = append(r.Calls, calls...)
}

// matching - filtered copy, newest first
func (r *MemoryRepo) matching(f Filter) []models.VoIPCall {

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.VoIPCall, 0)

	for i := range r.Calls {
		if f.Match(&r.Calls[i]) {
			out = append(out, r.Calls[i])
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StartingDate.Equal(out[j].StartingDate) {
			return out[i].ID > out[j].ID
		}
		return out[i].StartingDate.After(out[j].StartingDate)
	})

	return out
}

// List -
func (r *MemoryRepo) List(f Filter, offset, limit int) ([]models.VoIPCall, int64, error) {

	all := r.matching(f)
	total := int64(len(all))

	if offset >= len(all) {
		return []models.VoIPCall{}, total, nil
	}

	end := offset + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}

	return all[offset:end], total, nil
}

// Each -
func (r *MemoryRepo) Each(f Filter, fn func(*models.VoIPCall) error) error {

	all := r.matching(f)

	for i := range all {
		if err := fn(&all[i]); err != nil {
			return err
		}
	}

	return nil
}

// Daily -
func (r *MemoryRepo) Daily(f Filter) ([]DailyTotal, error) {

	var (
		byDay = make(map[string]*DailyTotal)
		order []string
	)

	for _, c := range r.matching(f) {

		day := c.StartingDate.Format("2006-01-02")

		d, ok := byDay[day]
		if !ok {
			d = &DailyTotal{Day: day}
			byDay[day] = d
			order = append(order, day)
		}

		d.Calls++
		d.Duration += c.SessionTimeReal
	}

	sort.Sort(sort.Reverse(sort.StringSlice(order)))

	days := make([]DailyTotal, 0, len(order))

	for _, day := range order {
		d := byDay[day]
		d.AvgDuration = float64(d.Duration) / float64(d.Calls)
		days = append(days, *d)
	}

	return days, nil
}

// Get -
func (r *MemoryRepo) Get(id int64) (*models.VoIPCall, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.Calls {
		if r.Calls[i].ID == id {
			c := r.Calls[i]
			return &c, nil
		}
	}

	return nil, ErrNotFound
}
