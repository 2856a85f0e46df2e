package services

import (
	"context"
	"sort"
	"time"

	"github.com/selamstaff/backend/internal/cache"
	"github.com/selamstaff/backend/internal/models"
	pgrepo "github.com/selamstaff/backend/internal/repositories/postgres"
	"github.com/selamstaff/backend/internal/utils"
)

const statsCacheKey = "dashboard:stats"

type EntityStats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type Stats struct {
	Candidates  EntityStats `json:"candidates"`
	Employers   EntityStats `json:"employers"`
	Agencies    EntityStats `json:"agencies"`
	GeneratedAt time.Time   `json:"generatedAt"`
}

// ActivityItem is one entry of the combined recent-registrations feed; Role
// discriminates the source collection.
type ActivityItem struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Role      string        `json:"role"`
	Status    models.Status `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

type StatsService interface {
	Overview(ctx context.Context) (*Stats, error)
	RecentActivity(ctx context.Context, limit int) ([]ActivityItem, error)
}

type statsService struct {
	candidates pgrepo.RecordRepository[models.Candidate]
	employers  pgrepo.RecordRepository[models.Employer]
	agencies   pgrepo.RecordRepository[models.Agency]

	cache cache.Cache // nil when Redis is not configured
	ttl   time.Duration
}

func NewStatsService(
	candidates pgrepo.RecordRepository[models.Candidate],
	employers pgrepo.RecordRepository[models.Employer],
	agencies pgrepo.RecordRepository[models.Agency],
	c cache.Cache,
	ttl time.Duration,
) StatsService {
	return &statsService{
		candidates: candidates,
		employers:  employers,
		agencies:   agencies,
		cache:      c,
		ttl:        ttl,
	}
}

func (s *statsService) Overview(ctx context.Context) (*Stats, error) {
	const op = "StatsService.Overview"

	if s.cache != nil {
		var cached Stats
		if hit, err := s.cache.GetJSON(ctx, statsCacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	out := &Stats{GeneratedAt: time.Now().UTC()}

	counts, err := s.candidates.CountByStatus(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count candidates", err)
	}
	out.Candidates = toEntityStats(counts)

	counts, err = s.employers.CountByStatus(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count employers", err)
	}
	out.Employers = toEntityStats(counts)

	counts, err = s.agencies.CountByStatus(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count agencies", err)
	}
	out.Agencies = toEntityStats(counts)

	if s.cache != nil {
		// best effort; a failed cache write never fails the request
		_ = s.cache.SetJSON(ctx, statsCacheKey, out, s.ttl)
	}
	return out, nil
}

func toEntityStats(counts map[models.Status]int64) EntityStats {
	st := EntityStats{
		Pending:  counts[models.StatusPending],
		Approved: counts[models.StatusApproved],
		Rejected: counts[models.StatusRejected],
	}
	st.Total = st.Pending + st.Approved + st.Rejected
	return st
}

func (s *statsService) RecentActivity(ctx context.Context, limit int) ([]ActivityItem, error) {
	const op = "StatsService.RecentActivity"

	if limit <= 0 {
		limit = 20
	}

	candidates, err := s.candidates.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list candidates", err)
	}
	employers, err := s.employers.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list employers", err)
	}
	agencies, err := s.agencies.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list agencies", err)
	}

	items := make([]ActivityItem, 0, len(candidates)+len(employers)+len(agencies))
	for _, c := range candidates {
		items = append(items, ActivityItem{
			ID:        c.ID,
			Name:      c.FirstName + " " + c.LastName,
			Role:      "candidate",
			Status:    c.Status,
			CreatedAt: c.CreatedAt,
		})
	}
	for _, e := range employers {
		items = append(items, ActivityItem{
			ID:        e.ID,
			Name:      e.CompanyName,
			Role:      "employer",
			Status:    e.Status,
			CreatedAt: e.CreatedAt,
		})
	}
	for _, a := range agencies {
		items = append(items, ActivityItem{
			ID:        a.ID,
			Name:      a.AgencyName,
			Role:      "agency",
			Status:    a.Status,
			CreatedAt: a.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
