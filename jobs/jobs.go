package jobs

import (
	"fmt"
	"time"

	"dialeradmin/controllers/auth"
	"dialeradmin/models"
	"dialeradmin/reports"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/uniplaces/carbon"
)

// CronJob -
type CronJob struct {
	DB      *gorm.DB
	Logger  *logrus.Logger
	Reports *reports.Service
	Now     func() time.Time
}

// NewCronJob - instantiates CronJob
func NewCronJob(db *gorm.DB, logger *logrus.Logger) *CronJob {
	return &CronJob{
		DB:      db,
		Logger:  logger,
		Reports: reports.NewService(reports.NewGormRepository(db), 0),
		Now:     time.Now,
	}
}

// PurgeTokens - deletes admin tokens older than their lifetime
func (c *CronJob) PurgeTokens() {

	res := c.DB.Where("created_at < ?", c.Now().Add(-auth.TokenTTL)).Delete(&models.Token{})

	if res.Error != nil {
		c.Logger.Errorf("[PURGE TOKENS] cannot delete expired tokens. %v", res.Error)
		return
	}

	if res.RowsAffected > 0 {
		c.Logger.Infof("[PURGE TOKENS] %d expired tokens deleted", res.RowsAffected)
	}
}

// Yesterday - filter of the whole previous day
func Yesterday(now time.Time) reports.Filter {

	from := carbon.NewCarbon(now).StartOfDay().Time.AddDate(0, 0, -1)
	to := carbon.NewCarbon(from).EndOfDay().Time

	return reports.Filter{From: &from, To: &to}
}

// DailyReport - logs yesterday's call totals
func (c *CronJob) DailyReport() {

	filter := Yesterday(c.Now())

	_, summary, err := c.Reports.Totals(filter)
	if err != nil {
		c.Logger.Errorf("[DAILY REPORT] %v", err)
		return
	}

	c.Logger.WithFields(logrus.Fields{
		"day":              filter.From.Format("2006-01-02"),
		"total_calls":      summary.TotalCalls,
		"total_duration":   summary.TotalDuration,
		"avg_duration":     fmt.Sprintf("%.2f", summary.TotalAvgDuration),
		"max_day_duration": summary.MaxDuration,
	}).Info("[DAILY REPORT] call totals")
}
