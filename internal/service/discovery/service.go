package discovery

import (
	"context"
	"sort"
	"time"

	"github.com/kingRayhan/dating-app/internal/app"
	"github.com/kingRayhan/dating-app/internal/db"
	"github.com/kingRayhan/dating-app/internal/domain/rules"
	svcErr "github.com/kingRayhan/dating-app/internal/errors"
	"github.com/kingRayhan/dating-app/internal/geo"
	"github.com/kingRayhan/dating-app/internal/repository"
)

const defaultPageSize = 20

// Candidate is one entry of the discovery feed: a candidate profile
// annotated with the values computed during filtering. Photos are
// populated by a separate media collaborator, not this core.
type Candidate struct {
	UserID     uint64
	FirstName  string
	Age        int
	Bio        string
	DistanceKM float64
	Photos     []string
}

// Service produces the ranked, paginated discovery feed.
//
// The read path is side-effect-free: it loads the requester and the
// candidate pool, filters in memory, and never writes. Safe for any
// number of parallel callers.
type Service struct {
	appCtx   *app.AppContext
	userRepo *repository.UserRepository
	defaults rules.Defaults
	maxPage  int
	now      func() time.Time
}

// NewService creates a discovery service with dependencies from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:   appCtx,
		userRepo: repository.NewUserRepository(appCtx.DB),
		defaults: rules.Defaults{
			MaxDistanceKM: appCtx.Config.Discovery.DefaultMaxDistanceKM,
			AgeMin:        appCtx.Config.Discovery.DefaultAgeMin,
			AgeMax:        appCtx.Config.Discovery.DefaultAgeMax,
			ShowMe:        appCtx.Config.Discovery.DefaultShowMe,
		},
		maxPage: appCtx.Config.Discovery.MaxPageSize,
		now:     time.Now,
	}
}

// GetFeed returns the requester's discovery feed page.
//
// Behavior:
//   - Requester must have both a coordinate and a birth date; when
//     either is missing the feed is empty, not an error.
//   - Candidates are users the requester hasn't swiped on, inside the
//     requester's age range, within max distance, and matching the
//     show-me preference. A candidate who already liked the requester
//     but wasn't reciprocated stays visible.
//   - Ordered by distance ascending, candidate id as tiebreak, so
//     repeated calls over an unchanged pool paginate deterministically.
//   - Offset past the end yields an empty page.
func (s *Service) GetFeed(ctx context.Context, requesterID uint64, limit, offset int) ([]Candidate, error) {
	s.appCtx.Logger.Debug("GetFeed called", "requester", requesterID, "limit", limit, "offset", offset)

	if requesterID == 0 {
		return nil, svcErr.ErrInvalidArgument
	}
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > s.maxPage {
		limit = s.maxPage
	}

	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	// feed is unavailable until the profile is complete
	if requester.Latitude == nil || requester.Longitude == nil || requester.BirthDate == nil {
		s.appCtx.Logger.Debug("GetFeed: incomplete profile, empty feed", "requester", requesterID)
		return []Candidate{}, nil
	}
	if err := geo.ValidateCoordinates(*requester.Latitude, *requester.Longitude); err != nil {
		s.appCtx.Logger.Warn("GetFeed: requester has invalid coordinates", "requester", requesterID)
		return []Candidate{}, nil
	}

	prefs := rules.ApplyDefaults(rules.Preferences{
		MaxDistanceKM: requester.MaxDistanceKM,
		AgeMin:        requester.AgeMin,
		AgeMax:        requester.AgeMax,
		ShowMe:        requester.ShowMe,
	}, s.defaults)

	pool, err := s.userRepo.ListCandidates(ctx, requesterID)
	if err != nil {
		return nil, svcErr.Map(err)
	}

	now := s.now()
	eligible := filter(requester, pool, prefs, now)

	// rank by exact distance before rounding for presentation
	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].dist != eligible[j].dist {
			return eligible[i].dist < eligible[j].dist
		}
		return eligible[i].UserID < eligible[j].UserID
	})

	if offset >= len(eligible) {
		return []Candidate{}, nil
	}
	end := offset + limit
	if end > len(eligible) {
		end = len(eligible)
	}

	page := make([]Candidate, 0, end-offset)
	for _, e := range eligible[offset:end] {
		page = append(page, e.Candidate)
	}
	s.appCtx.Logger.Debug("GetFeed result", "requester", requesterID, "eligible", len(eligible), "page", len(page))
	return page, nil
}

type rankedCandidate struct {
	Candidate
	dist float64
}

// filter applies the candidate eligibility rules and annotates each
// survivor with computed age and distance.
func filter(requester db.User, pool []db.User, prefs rules.Preferences, now time.Time) []rankedCandidate {
	out := make([]rankedCandidate, 0, len(pool))
	for _, c := range pool {
		// candidates with incomplete or corrupt profiles can't be evaluated
		if c.Latitude == nil || c.Longitude == nil || c.BirthDate == nil {
			continue
		}
		if geo.ValidateCoordinates(*c.Latitude, *c.Longitude) != nil {
			continue
		}

		age := rules.AgeAt(*c.BirthDate, now)
		if age < prefs.AgeMin || age > prefs.AgeMax {
			continue
		}

		if !rules.GenderMatches(prefs.ShowMe, c.Gender) {
			continue
		}

		dist := geo.HaversineKM(*requester.Latitude, *requester.Longitude, *c.Latitude, *c.Longitude)
		if dist > prefs.MaxDistanceKM {
			continue
		}

		out = append(out, rankedCandidate{
			Candidate: Candidate{
				UserID:     c.ID,
				FirstName:  c.FirstName,
				Age:        age,
				Bio:        c.Bio,
				DistanceKM: geo.RoundKM(dist),
				Photos:     []string{},
			},
			dist: dist,
		})
	}
	return out
}
