package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/SessionBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// LifecycleService derives session status from wall-clock time. It only
// demotes active sessions to past; cancellation is the cancellation
// engine's job and cancelled is terminal.
type LifecycleService struct {
	sessionRepo ports.SessionRepo
	logger      logger.Logger
}

func NewLifecycleService(sessionRepo ports.SessionRepo, logger logger.Logger) *LifecycleService {
	return &LifecycleService{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (s *LifecycleService) MarkPast(ctx context.Context) (int64, error) {
	count, err := s.sessionRepo.MarkPastDue(ctx)
	if err != nil {
		return 0, fmt.Errorf("mark past due: %w", err)
	}

	if count > 0 {
		s.logger.Info("sessions transitioned to past",
			logger.Int64("count", count),
		)
	}

	return count, nil
}
