package reports

import (
	"errors"
	"fmt"

	"dialeradmin/models"

	"github.com/jinzhu/gorm"
)

// ErrNotFound -
var ErrNotFound = errors.New("reports: voip call not found")

// dayExpr truncates starting_date to its date part, portable across
// mysql, postgres and sqlite
const dayExpr = "SUBSTR(CAST(starting_date AS CHAR(30)), 1, 10)"

const exportBatch = 1000

// Repository - read access to dialer_cdr for the report screens
type Repository interface {
	// List - one page of calls, newest first, and the size of the whole set
	List(f Filter, offset, limit int) ([]models.VoIPCall, int64, error)

	// Each - every call of the set, newest first
	Each(f Filter, fn func(*models.VoIPCall) error) error

	// Daily - per day aggregates, newest day first
	Daily(f Filter) ([]DailyTotal, error)

	// Get - a single call
	Get(id int64) (*models.VoIPCall, error)
}

// GormRepository - Repository on the dialer database
type GormRepository struct {
	DB *gorm.DB
}

// NewGormRepository -
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{DB: db}
}

func (r *GormRepository) query(f Filter) *gorm.DB {
	return f.Apply(r.DB.Model(&models.VoIPCall{}))
}

// List -
func (r *GormRepository) List(f Filter, offset, limit int) ([]models.VoIPCall, int64, error) {

	var (
		total int64
		calls []models.VoIPCall
	)

	if err := r.query(f).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("cannot count voip calls. %w", err)
	}

	err := r.query(f).
		Order("starting_date desc").
		Order("id desc").
		Offset(offset).
		Limit(limit).
		Find(&calls).Error

	if err != nil {
		return nil, 0, fmt.Errorf("cannot select voip calls. %w", err)
	}

	if err = r.resolve(calls); err != nil {
		return nil, 0, err
	}

	return calls, total, nil
}

// Each - walks the set in batches so exports do not hold it in memory.
// Batches continue after the last (starting_date, id) seen, calls written
// while the export runs cannot shift rows between batches.
func (r *GormRepository) Each(f Filter, fn func(*models.VoIPCall) error) error {

	var last *models.VoIPCall

	for {

		var calls []models.VoIPCall

		q := r.query(f)

		if last != nil {
			q = q.Where("starting_date < ? OR (starting_date = ? AND id < ?)",
				last.StartingDate, last.StartingDate, last.ID)
		}

		err := q.Order("starting_date desc").
			Order("id desc").
			Limit(exportBatch).
			Find(&calls).Error

		if err != nil {
			return fmt.Errorf("cannot select voip calls for export. %w", err)
		}

		if err = r.resolve(calls); err != nil {
			return err
		}

		for i := range calls {
			if err = fn(&calls[i]); err != nil {
				return err
			}
		}

		if len(calls) < exportBatch {
			return nil
		}

		cursor := calls[len(calls)-1]
		last = &cursor
	}
}

// Daily -
func (r *GormRepository) Daily(f Filter) ([]DailyTotal, error) {

	rows, err := f.Apply(r.DB.Table(models.VoIPCall{}.TableName())).
		Select(dayExpr + " AS call_day, COUNT(*) AS calls, SUM(sessiontime_real) AS duration, AVG(sessiontime_real) AS avg_duration").
		Group("call_day").
		Order("call_day desc").
		Rows()

	if err != nil {
		return nil, fmt.Errorf("cannot aggregate voip calls. %w", err)
	}
	defer rows.Close()

	var days []DailyTotal

	for rows.Next() {

		var d DailyTotal

		if err = rows.Scan(&d.Day, &d.Calls, &d.Duration, &d.AvgDuration); err != nil {
			return nil, fmt.Errorf("cannot scan daily total. %w", err)
		}

		days = append(days, d)
	}

	return days, rows.Err()
}

// Get -
func (r *GormRepository) Get(id int64) (*models.VoIPCall, error) {

	var call models.VoIPCall

	err := r.DB.Where("id = ?", id).First(&call).Error

	if gorm.IsRecordNotFoundError(err) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("cannot select voip call %d. %w", id, err)
	}

	calls := []models.VoIPCall{call}

	if err = r.resolve(calls); err != nil {
		return nil, err
	}

	return &calls[0], nil
}

// resolve - fills usernames and gateway names
func (r *GormRepository) resolve(calls []models.VoIPCall) error {

	if len(calls) == 0 {
		return nil
	}

	var (
		userIDs    = make([]*int64, 0, len(calls))
		gatewayIDs = make([]*int64, 0, len(calls))
	)

	for i := range calls {
		userIDs = append(userIDs, &calls[i].UserID)
		gatewayIDs = append(gatewayIDs, calls[i].UsedGatewayID)
	}

	users, err := models.Names(r.DB, models.User{}.TableName(), "username", models.IDs(userIDs...))
	if err != nil {
		return fmt.Errorf("cannot resolve usernames. %w", err)
	}

	gateways, err := models.Names(r.DB, models.Gateway{}.TableName(), "name", models.IDs(gatewayIDs...))
	if err != nil {
		return fmt.Errorf("cannot resolve gateways. %w", err)
	}

	for i := range calls {

		calls[i].Username = users[calls[i].UserID]

		if calls[i].UsedGatewayID != nil {
			calls[i].GatewayName = gateways[*calls[i].UsedGatewayID]
		}
	}

	return nil
}
