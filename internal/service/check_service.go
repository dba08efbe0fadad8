package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/anapiyani/Checkdaily-backend/internal/cache"
	"github.com/anapiyani/Checkdaily-backend/internal/days"
	dom "github.com/anapiyani/Checkdaily-backend/internal/domain"
	"github.com/anapiyani/Checkdaily-backend/internal/repo"
	"github.com/anapiyani/Checkdaily-backend/internal/stats"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrYearOutOfRange = errors.New("year must be between 1970 and 2100")

	// ErrNoEntryToday is days.ErrNoEntryToday surfaced at the service
	// boundary so handlers don't import the core package.
	ErrNoEntryToday = days.ErrNoEntryToday
)

// CheckView is the response snapshot for one check: the entity, its day
// rows ordered ascending by date, and the derived statistics.
type CheckView struct {
	Check dom.Check
	Days  []dom.DayStatus
	Stats stats.Summary
}

// CheckService owns all check operations. Mutations run through
// repo.Mutate so that read-compute-write happens under the check's row
// lock; the planners in internal/days never see concurrent state.
type CheckService struct {
	repo  repo.CheckRepo
	cache *cache.CheckCache
	sf    singleflight.Group
	now   func() time.Time
}

// NewCheckService creates a CheckService. If c is nil, caching is disabled.
func NewCheckService(r repo.CheckRepo, c *cache.CheckCache) *CheckService {
	return &CheckService{repo: r, cache: c, now: time.Now}
}

// Create makes a new check for the user with one unchecked day row per
// offset 0..count-1. A negative count is clamped to zero.
func (s *CheckService) Create(ctx context.Context, userID int64, name string, count int) (CheckView, error) {
	now := s.now()
	check := dom.Check{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
	}
	rows, clamped := days.Generate(check.ID, count, now)
	check.Count = clamped

	if err := s.repo.Create(ctx, check, rows); err != nil {
		return CheckView{}, err
	}
	s.invalidateCache(ctx, userID)
	return s.view(check, rows), nil
}

// List returns snapshots for all of the user's checks.
func (s *CheckService) List(ctx context.Context, userID int64) ([]CheckView, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if data, err := s.cache.GetList(ctx, userID); err == nil && data != nil {
				return data, nil
			}
			data, err := s.listFromRepo(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, data)
			return data, nil
		})
		if err != nil {
			return nil, err
		}
		return s.views(v.([]cache.CheckData)), nil
	}
	data, err := s.listFromRepo(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.views(data), nil
}

// Get returns the snapshot for one of the user's checks.
func (s *CheckService) Get(ctx context.Context, userID int64, id string) (CheckView, error) {
	check, statuses, err := s.repo.GetWithDays(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return CheckView{}, ErrNotFound
		}
		return CheckView{}, err
	}
	return s.view(check, statuses), nil
}

// Update renames and/or resizes the check. The two are independent: a
// rename never touches day rows, and a resize follows the grow/shrink
// rules in internal/days.
func (s *CheckService) Update(ctx context.Context, userID int64, id string, name *string, count *int) (CheckView, error) {
	check, statuses, err := s.repo.Mutate(ctx, userID, id,
		func(check *dom.Check, statuses []dom.DayStatus) (days.Plan, error) {
			if name != nil {
				check.Name = strings.TrimSpace(*name)
			}
			var plan days.Plan
			if count != nil {
				plan = days.Resize(check, statuses, *count)
			}
			return plan, nil
		})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return CheckView{}, ErrNotFound
		}
		return CheckView{}, err
	}
	s.invalidateCache(ctx, userID)
	return s.view(check, statuses), nil
}

// ToggleToday marks or clears today's completion for the check. Checking is
// idempotent; unchecking a day without a checked row fails with
// ErrNoEntryToday.
func (s *CheckService) ToggleToday(ctx context.Context, userID int64, id string, checked bool) (CheckView, error) {
	now := s.now()
	check, statuses, err := s.repo.Mutate(ctx, userID, id,
		func(check *dom.Check, statuses []dom.DayStatus) (days.Plan, error) {
			if checked {
				return days.CheckToday(check, statuses, now), nil
			}
			return days.UncheckToday(statuses, now)
		})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return CheckView{}, ErrNotFound
		}
		return CheckView{}, err
	}
	s.invalidateCache(ctx, userID)
	return s.view(check, statuses), nil
}

// Delete removes the user's check and all of its day rows.
func (s *CheckService) Delete(ctx context.Context, userID int64, id string) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx, userID)
	return nil
}

// YearlyActivity returns one entry per calendar day of the year with the
// number of checks the user completed that day, plus the maximum
// single-day count.
func (s *CheckService) YearlyActivity(ctx context.Context, userID int64, year int) ([]stats.DayActivity, int, error) {
	if year < 1970 || year > 2100 {
		return nil, 0, ErrYearOutOfRange
	}
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)
	statuses, err := s.repo.CheckedBetween(ctx, userID, from, to)
	if err != nil {
		return nil, 0, err
	}
	grid, maxCount := stats.Yearly(year, statuses)
	return grid, maxCount, nil
}

func (s *CheckService) listFromRepo(ctx context.Context, userID int64) ([]cache.CheckData, error) {
	checks, byCheck, err := s.repo.ListWithDays(ctx, userID)
	if err != nil {
		return nil, err
	}
	data := make([]cache.CheckData, 0, len(checks))
	for _, c := range checks {
		data = append(data, cache.CheckData{Check: c, Days: byCheck[c.ID]})
	}
	return data, nil
}

func (s *CheckService) views(data []cache.CheckData) []CheckView {
	out := make([]CheckView, 0, len(data))
	for _, d := range data {
		out = append(out, s.view(d.Check, d.Days))
	}
	return out
}

// view builds the snapshot: days sorted ascending, stats as of now.
func (s *CheckService) view(check dom.Check, statuses []dom.DayStatus) CheckView {
	sorted := stats.SortByDate(statuses)
	return CheckView{
		Check: check,
		Days:  sorted,
		Stats: stats.Compute(check, sorted, s.now()),
	}
}

func (s *CheckService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx, userID)
	}
}
