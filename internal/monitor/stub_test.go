package monitor_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"leakwatch/pkg/domain"
	"leakwatch/pkg/storage"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
)

// storageStub is an in-memory storage.Storage with just enough behavior to
// exercise the scheduler's state and notification semantics.
type storageStub struct {
	mu sync.Mutex

	users         map[domain.UserID]domain.User
	watches       map[domain.WatchID]domain.Watch
	notifications map[string]domain.NotificationRecord
	alerts        []domain.DarkWebAlert
	checks        []domain.CheckRecord
}

var (
	_ storage.Storage   = (*storageStub)(nil)
	_ storage.TxStorage = (*storageStub)(nil)
)

func newStorageStub() *storageStub {
	return &storageStub{
		users:         make(map[domain.UserID]domain.User),
		watches:       make(map[domain.WatchID]domain.Watch),
		notifications: make(map[string]domain.NotificationRecord),
	}
}

func (s *storageStub) addUser(plan domain.Plan, expiresAt time.Time) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := domain.User{
		ID:            domain.UserID(uuid.New()),
		ChatID:        int64(1000 + len(s.users)),
		Plan:          plan,
		PlanExpiresAt: expiresAt,
		CreatedAt:     time.Now(),
	}
	s.users[user.ID] = user

	return user
}

func (s *storageStub) addWatch(userID domain.UserID, value string, lastCount int) domain.Watch {
	s.mu.Lock()
	defer s.mu.Unlock()

	watch := domain.Watch{
		ID:              domain.WatchID(uuid.New()),
		UserID:          userID,
		Value:           value,
		Active:          true,
		LastBreachCount: lastCount,
		CreatedAt:       time.Now(),
	}
	s.watches[watch.ID] = watch

	return watch
}

func (s *storageStub) watchByID(id domain.WatchID) domain.Watch {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.watches[id]
}

func (s *storageStub) notificationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.notifications)
}

func notificationKey(userID domain.UserID, kind domain.NotificationKind, fingerprint string) string {
	return fmt.Sprintf("%s/%s/%s", uuid.UUID(userID), kind, fingerprint)
}

func (s *storageStub) UpsertUser(_ context.Context, chatID int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ChatID == chatID {
			return &user, nil
		}
	}

	user := domain.User{
		ID:        domain.UserID(uuid.New()),
		ChatID:    chatID,
		Plan:      domain.PlanFree,
		CreatedAt: time.Now(),
	}
	s.users[user.ID] = user

	return &user, nil
}

func (s *storageStub) UserByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}

	return &user, nil
}

func (s *storageStub) UserByChatID(_ context.Context, chatID int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ChatID == chatID {
			return &user, nil
		}
	}

	return nil, nil
}

func (s *storageStub) SetPlan(_ context.Context,
	id domain.UserID,
	plan domain.Plan,
	expiresAt time.Time) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}

	user.Plan = plan
	user.PlanExpiresAt = expiresAt
	user.UpdatedAt = time.Now()
	s.users[id] = user

	return &user, nil
}

func (s *storageStub) StoreWatch(_ context.Context, watch domain.Watch) (*domain.Watch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, existing := range s.watches {
		if existing.UserID == watch.UserID && existing.Value == watch.Value {
			if existing.Active {
				return nil, nil
			}
			existing.Active = true
			s.watches[id] = existing

			return &existing, nil
		}
	}

	watch.ID = domain.WatchID(uuid.New())
	watch.CreatedAt = time.Now()
	s.watches[watch.ID] = watch

	return &watch, nil
}

func (s *storageStub) DeactivateWatch(_ context.Context,
	userID domain.UserID,
	id domain.WatchID) (*domain.Watch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	watch, ok := s.watches[id]
	if !ok || watch.UserID != userID || !watch.Active {
		return nil, nil
	}

	watch.Active = false
	s.watches[id] = watch

	return &watch, nil
}

func (s *storageStub) UserWatches(_ context.Context, userID domain.UserID) ([]domain.Watch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Watch
	for _, watch := range s.watches {
		if watch.UserID == userID && watch.Active {
			out = append(out, watch)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })

	return out, nil
}

func (s *storageStub) ActiveWatchCount(_ context.Context, userID domain.UserID) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, watch := range s.watches {
		if watch.UserID == userID && watch.Active {
			count++
		}
	}

	return count, nil
}

func (s *storageStub) ActiveWatches(_ context.Context) ([]domain.Watch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.Watch
	for _, watch := range s.watches {
		if watch.Active {
			out = append(out, watch)
		}
	}
	// Stalest first, never-checked before everything else.
	sort.Slice(out, func(i, j int) bool {
		if out[i].LastChecked.Equal(out[j].LastChecked) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}

		return out[i].LastChecked.Before(out[j].LastChecked)
	})

	return out, nil
}

func (s *storageStub) RecordWatchResult(_ context.Context,
	id domain.WatchID,
	checkedAt time.Time,
	breachCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	watch, ok := s.watches[id]
	if !ok {
		return fmt.Errorf("watch %s not found", uuid.UUID(id))
	}

	watch.LastChecked = checkedAt
	watch.LastBreachCount = breachCount
	s.watches[id] = watch

	return nil
}

func (s *storageStub) WasNotified(_ context.Context,
	userID domain.UserID,
	kind domain.NotificationKind,
	fingerprint string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.notifications[notificationKey(userID, kind, fingerprint)]

	return ok, nil
}

func (s *storageStub) AppendNotification(_ context.Context,
	record domain.NotificationRecord) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := notificationKey(record.UserID, record.Kind, record.Fingerprint)
	if _, ok := s.notifications[key]; ok {
		return false, nil
	}
	s.notifications[key] = record

	return true, nil
}

func (s *storageStub) StoreCheck(_ context.Context,
	record domain.CheckRecord) (*domain.CheckRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = uuid.New()
	record.CreatedAt = time.Now()
	s.checks = append(s.checks, record)

	return &record, nil
}

func (s *storageStub) UserChecks(_ context.Context,
	userID domain.UserID,
	limit uint) ([]domain.CheckRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.CheckRecord
	for i := len(s.checks) - 1; i >= 0 && uint(len(out)) < limit; i-- {
		if s.checks[i].UserID == userID {
			out = append(out, s.checks[i])
		}
	}

	return out, nil
}

func (s *storageStub) StoreAlert(_ context.Context,
	alert domain.DarkWebAlert) (*domain.DarkWebAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	alert.ID = domain.AlertID(uuid.New())
	alert.CreatedAt = time.Now()
	s.alerts = append(s.alerts, alert)

	return &alert, nil
}

func (s *storageStub) UserAlerts(_ context.Context,
	userID domain.UserID,
	unreadOnly bool,
	limit uint) ([]domain.DarkWebAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []domain.DarkWebAlert
	for i := len(s.alerts) - 1; i >= 0 && uint(len(out)) < limit; i-- {
		alert := s.alerts[i]
		if alert.UserID != userID || (unreadOnly && alert.Read) {
			continue
		}
		out = append(out, alert)
	}

	return out, nil
}

func (s *storageStub) MarkAlertsRead(_ context.Context, userID domain.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.alerts {
		if s.alerts[i].UserID == userID {
			s.alerts[i].Read = true
		}
	}

	return nil
}

func (s *storageStub) AddJob(_ context.Context, _ river.JobArgs, _ *river.InsertOpts) (bool, error) {
	return true, nil
}

func (s *storageStub) Close() error    { return nil }
func (s *storageStub) Commit() error   { return nil }
func (s *storageStub) Rollback() error { return nil }

func (s *storageStub) Begin(_ context.Context) (storage.TxStorage, error) {
	return s, nil
}

func (s *storageStub) WithTx(_ context.Context, cb func(storage storage.AllStorage) error) error {
	return cb(s)
}
