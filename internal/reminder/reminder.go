// Package reminder emails collaborators about trips departing soon.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/BaseMax/travel-planner-graphql/internal/email"
	"github.com/BaseMax/travel-planner-graphql/internal/metrics"
	"github.com/BaseMax/travel-planner-graphql/internal/repository"
)

const departureWindow = 24 * time.Hour

type Service struct {
	trips  repository.TripRepository
	users  repository.UserRepository
	email  email.Sender
	logger *slog.Logger
	cron   *cron.Cron
	spec   string
}

func New(trips repository.TripRepository, users repository.UserRepository, emailSender email.Sender, logger *slog.Logger, spec string) *Service {
	return &Service{
		trips:  trips,
		users:  users,
		email:  emailSender,
		logger: logger.With("component", "reminder"),
		cron:   cron.New(),
		spec:   spec,
	}
}

// Start schedules the reminder cycle and stops it when ctx ends.
func (s *Service) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.spec, func() { s.RunCycle(ctx) }); err != nil {
		return fmt.Errorf("schedule reminder cycle: %w", err)
	}
	s.cron.Start()
	s.logger.Info("reminder service started", "cron", s.spec)

	go func() {
		<-ctx.Done()
		s.cron.Stop()
		s.logger.Info("reminder service shut down")
	}()
	return nil
}

// RunCycle emails every collaborator of trips departing within the next
// 24 hours. A failed email skips that collaborator only.
func (s *Service) RunCycle(ctx context.Context) {
	start := time.Now()
	defer func() {
		metrics.ReminderCycleDuration.Observe(time.Since(start).Seconds())
	}()

	now := time.Now()
	trips, err := s.trips.FindDeparting(ctx, now, now.Add(departureWindow))
	if err != nil {
		s.logger.Error("find departing trips", "error", err)
		return
	}

	sent := 0
	for _, trip := range trips {
		for _, userID := range trip.Collaborators {
			user, err := s.users.FindByID(ctx, userID)
			if err != nil {
				s.logger.Warn("reminder user lookup", "trip_id", trip.ID, "user_id", userID, "error", err)
				continue
			}
			subject := fmt.Sprintf("Your trip to %s is coming up", trip.Destination)
			body := fmt.Sprintf(
				"<p>Hi %s, your trip to %s departs on %s.</p>",
				user.Name, trip.Destination, trip.FromDate.Format("Monday, 2 January 2006"),
			)
			if err := s.email.Send(ctx, user.Email, subject, body); err != nil {
				s.logger.Warn("send reminder", "trip_id", trip.ID, "user_id", userID, "error", err)
				continue
			}
			metrics.RemindersSentTotal.Inc()
			sent++
		}
	}
	if sent > 0 {
		s.logger.Info("reminder cycle finished", "trips", len(trips), "emails", sent)
	}
}
