package reports

import (
	"testing"
	"time"

	"dialeradmin/models"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.DB().SetMaxOpenConns(1)

	if err = db.AutoMigrate(models.All()...).Error; err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return db
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()

	gw := int64(1)
	rows := []interface{}{
		&models.User{ID: 1, Username: "admin", IsActive: true, IsStaff: true},
		&models.Gateway{ID: 1, Name: "gw-out"},
	}

	calls := []models.VoIPCall{
		call(1, now.Add(-3*time.Hour), 10, 1, "100"),
		call(2, now.Add(-2*time.Hour), 20, 1, "100"),
		call(3, now.Add(-1*time.Hour), 30, 2, "200"),
		call(4, now.Add(-48*time.Hour), 50, 1, "100"),
	}

	for i := range calls {
		calls[i].UsedGatewayID = &gw
		rows = append(rows, &calls[i])
	}

	for _, r := range rows {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestGormRepository_Daily(t *testing.T) {
	db := openTestDB(t)
	seed(t, db)

	repo := NewGormRepository(db)

	from := now.Add(-72 * time.Hour)
	days, err := repo.Daily(Filter{From: &from})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %+v", days)
	}
	if days[0].Day != "2026-10-19" || days[0].Calls != 3 || days[0].Duration != 60 || days[0].AvgDuration != 20 {
		t.Fatalf("unexpected newest day %+v", days[0])
	}
	if days[1].Day != "2026-10-17" || days[1].Calls != 1 || days[1].Duration != 50 {
		t.Fatalf("unexpected oldest day %+v", days[1])
	}
}

func TestGormRepository_ListAndFilter(t *testing.T) {
	db := openTestDB(t)
	seed(t, db)

	repo := NewGormRepository(db)

	calls, total, err := repo.List(Today(now), 0, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 3 || len(calls) != 2 {
		t.Fatalf("expected 3 total and a page of 2, got %d/%d", total, len(calls))
	}
	if calls[0].ID != 3 || calls[1].ID != 2 {
		t.Fatalf("expected newest first, got %d,%d", calls[0].ID, calls[1].ID)
	}
	if calls[0].Username != "admin" || calls[0].GatewayName != "gw-out" {
		t.Fatalf("expected resolved names, got %q/%q", calls[0].Username, calls[0].GatewayName)
	}

	busy := 2
	calls, total, err = repo.List(Filter{Disposition: &busy}, 0, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if total != 1 || calls[0].CallerID != "200" {
		t.Fatalf("expected the busy call only, got %+v", calls)
	}
}

func TestGormRepository_EachAndGet(t *testing.T) {
	db := openTestDB(t)
	seed(t, db)

	repo := NewGormRepository(db)

	var ids []int64
	err := repo.Each(Filter{CallerID: "100"}, func(v *models.VoIPCall) error {
		ids = append(ids, v.ID)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(ids) != 3 || ids[0] != 2 || ids[2] != 4 {
		t.Fatalf("unexpected ids %v", ids)
	}

	c, err := repo.Get(3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.DispositionName() != "BUSY" || c.GatewayName != "gw-out" {
		t.Fatalf("unexpected call %+v", c)
	}

	if _, err = repo.Get(99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGormRepository_EachStableWhileCallsArrive(t *testing.T) {
	db := openTestDB(t)

	const seeded = exportBatch + 5

	tx := db.Begin()
	for i := 0; i < seeded; i++ {
		// pairs share a starting_date so the id tie-break is exercised
		c := call(int64(i+1), now.Add(-time.Duration(i/2)*time.Second), 10, 1, "100")
		if err := tx.Create(&c).Error; err != nil {
			tx.Rollback()
			t.Fatalf("seed: %v", err)
		}
	}
	if err := tx.Commit().Error; err != nil {
		t.Fatalf("commit: %v", err)
	}

	repo := NewGormRepository(db)

	var (
		seen = make(map[int64]int)
		prev *models.VoIPCall
		n    int
	)

	err := repo.Each(Today(now), func(v *models.VoIPCall) error {
		n++
		seen[v.ID]++

		if prev != nil && (v.StartingDate.After(prev.StartingDate) ||
			(v.StartingDate.Equal(prev.StartingDate) && v.ID > prev.ID)) {
			t.Fatalf("call %d exported out of order after %d", v.ID, prev.ID)
		}
		cp := *v
		prev = &cp

		// the dialer writes a new call in the middle of the export
		if n == 10 {
			late := call(seeded+1, now.Add(time.Second), 5, 1, "100")
			return db.Create(&late).Error
		}
		return nil
	})
	if err != nil {
		t.Fatalf("each: %v", err)
	}

	for id, times := range seen {
		if times != 1 {
			t.Fatalf("call %d exported %d times", id, times)
		}
	}
	if n != seeded || len(seen) != seeded {
		t.Fatalf("expected %d distinct rows, got rows=%d distinct=%d", seeded, n, len(seen))
	}
}
