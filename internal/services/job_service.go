package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jobdeck/jobdeck-api/internal/cache"
	"github.com/jobdeck/jobdeck-api/internal/dtos"
	"github.com/jobdeck/jobdeck-api/internal/models"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	DefaultPageLimit = 20

	// listCacheTTL bounds listing staleness: a cached page can lag the
	// store by at most this long.
	listCacheTTL = 60 * time.Second
)

type JobService struct {
	DB    *gorm.DB
	Cache cache.Store
}

func NewJobService(db *gorm.DB, store cache.Store) *JobService {
	return &JobService{DB: db, Cache: store}
}

// List returns the serialized listing payload for one page. Cache hits are
// returned verbatim so repeated reads within the TTL are byte-identical;
// cache failures fall through to the store and never fail the request.
func (s *JobService) List(ctx context.Context, page, limit int) ([]byte, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}

	key := fmt.Sprintf("jobs:%d:%d", page, limit)
	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key)
		if err == nil {
			return []byte(cached), nil
		}
		if !errors.Is(err, cache.ErrMiss) {
			log.Printf("jobs cache read failed, falling back to store: %v", err)
		}
	}

	var jobs []models.Job
	var total int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.DB.WithContext(gctx).
			Order("last_seen desc, id desc").
			Limit(limit).
			Offset((page - 1) * limit).
			Find(&jobs).Error
	})
	g.Go(func() error {
		return s.DB.WithContext(gctx).Model(&models.Job{}).Count(&total).Error
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if jobs == nil {
		jobs = []models.Job{}
	}
	var totalPages int64
	if total > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}

	payload, err := json.Marshal(dtos.JobListResponse{
		Jobs: jobs,
		Pagination: dtos.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, key, string(payload), listCacheTTL); err != nil {
			log.Printf("jobs cache write failed: %v", err)
		}
	}
	return payload, nil
}
