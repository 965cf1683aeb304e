package monitor

import (
	"context"
	"time"

	"leakwatch/internal/breach"
	"leakwatch/internal/config"
	"leakwatch/internal/darkweb"
	"leakwatch/pkg/domain"
	"leakwatch/pkg/logger"
	"leakwatch/pkg/notify"
	"leakwatch/pkg/serrors"
	"leakwatch/pkg/storage"

	"go.uber.org/zap"
)

// Watch limits per paid plan. Free users cannot hold watches at all.
const (
	premiumWatchLimit  = 5
	businessWatchLimit = 50
)

// Options configures the pacing of monitoring cycles.
type Options struct {
	// ItemDelay is the pause between consecutive watches within a cycle.
	ItemDelay time.Duration
	// CheckTimeout bounds the check of a single watch.
	CheckTimeout time.Duration
}

// NewOptions builds Options from the service configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		ItemDelay:    cfg.Monitor.ItemDelay,
		CheckTimeout: cfg.Monitor.CheckTimeout,
	}
}

type service struct {
	storage  storage.Storage
	checker  breach.Checker
	scanner  darkweb.Scanner
	notifier notify.Notifier
	options  Options
}

var _ Service = (*service)(nil)

// New creates the monitoring service on top of the given collaborators.
func New(str storage.Storage,
	checker breach.Checker,
	scanner darkweb.Scanner,
	notifier notify.Notifier,
	options Options) Service {
	return &service{
		storage:  str,
		checker:  checker,
		scanner:  scanner,
		notifier: notifier,
		options:  options,
	}
}

func watchLimit(plan domain.Plan) int64 {
	switch plan {
	case domain.PlanBusiness:
		return businessWatchLimit
	case domain.PlanPremium:
		return premiumWatchLimit
	default:
		return 0
	}
}

func (s *service) AddWatch(ctx context.Context,
	userID domain.UserID,
	value string) (*domain.Watch, error) {
	normalized, err := breach.NormalizeIdentifier(value, domain.QueryTypeEmail)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not fetch user")
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}
	if !user.Entitled(time.Now()) {
		return nil, serrors.With(serrors.ErrUnauthorized, "monitoring requires an active paid plan")
	}

	count, err := s.storage.ActiveWatchCount(ctx, userID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not count watches")
	}
	if limit := watchLimit(user.Plan); count >= limit {
		return nil, serrors.With(serrors.ErrConflict, "watch limit of %d reached", limit)
	}

	watch, err := s.storage.StoreWatch(ctx, domain.Watch{
		UserID: userID,
		Value:  normalized,
		Active: true,
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not store watch")
	}
	if watch == nil {
		return nil, serrors.With(serrors.ErrConflict, "identifier is already being watched")
	}

	// Kick a leak cycle right away so the new watch is checked before the
	// next periodic tick. Unique job options collapse this with a cycle that
	// is already queued or running.
	if _, err := s.storage.AddJob(ctx, LeakCycleArgs{}, nil); err != nil {
		logger.Warn(ctx, "could not enqueue leak cycle", zap.Error(err))
	}

	return watch, nil
}

func (s *service) RemoveWatch(ctx context.Context,
	userID domain.UserID,
	id domain.WatchID) error {
	watch, err := s.storage.DeactivateWatch(ctx, userID, id)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "could not deactivate watch")
	}
	if watch == nil {
		return serrors.With(serrors.ErrNotFound, "watch not found")
	}

	return nil
}

func (s *service) Watches(ctx context.Context, userID domain.UserID) ([]domain.Watch, error) {
	watches, err := s.storage.UserWatches(ctx, userID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not fetch watches")
	}

	return watches, nil
}
