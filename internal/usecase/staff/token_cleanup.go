package staff

import (
	"context"
	"time"

	"github.com/AyushiSrivastava11/VRV-Backend/internal/logger"
	"go.uber.org/zap"
)

// StartTokenCleanupJob deletes long-dead refresh token rows on a fixed
// interval until the context is cancelled.
func (s *Service) StartTokenCleanupJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("Refresh token cleanup job started",
		zap.Duration("interval", interval),
	)

	s.cleanupExpiredTokens(ctx)

	for {
		select {
		case <-ctx.Done():
			logger.Info("Refresh token cleanup job stopped")
			return
		case <-ticker.C:
			s.cleanupExpiredTokens(ctx)
		}
	}
}

func (s *Service) cleanupExpiredTokens(ctx context.Context) {
	olderThan := 24 * time.Hour
	if err := s.refreshTokenRepo.DeleteExpired(ctx, olderThan); err != nil {
		logger.Error("Failed to delete expired refresh tokens", zap.Error(err))
		return
	}

	logger.Debug("Expired refresh tokens cleaned up",
		zap.Duration("older_than", olderThan),
	)
}
