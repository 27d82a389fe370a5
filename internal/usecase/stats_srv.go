package usecase

import (
	"context"

	"wedding-planner/internal/data/entity"
	"wedding-planner/internal/data/repository"
	"wedding-planner/internal/dto/response"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type StatsService interface {
	Dashboard(ctx context.Context) (*response.StatsResponse, error)
}

type statsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStatsService(repo *repository.Repository, log *zap.Logger) StatsService {
	return &statsService{
		repo: repo,
		log:  log.With(zap.String("service", "stats")),
	}
}

// Dashboard runs the five counts concurrently. They are independent reads,
// so the totals are not a single consistent snapshot.
func (s *statsService) Dashboard(ctx context.Context) (*response.StatsResponse, error) {
	var stats response.StatsResponse
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalUsers, err = s.repo.User.CountAll(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalBookings, err = s.repo.Booking.CountAll(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalVendors, err = s.repo.Vendor.CountAll(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats.UnreadMessages, err = s.repo.Message.CountByStatus(ctx, entity.MessageUnread)
		return err
	})
	g.Go(func() (err error) {
		stats.PendingApplications, err = s.repo.Application.CountByStatus(ctx, entity.ApplicationPending)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.Error("Failed to collect dashboard stats", zap.Error(err))
		return nil, err
	}

	return &stats, nil
}
