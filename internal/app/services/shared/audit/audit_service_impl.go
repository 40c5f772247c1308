package audit

import (
	"context"

	"github.com/Maitreya20/care-tap-ai/internal/app/contracts"
	"github.com/Maitreya20/care-tap-ai/internal/app/models"
	"github.com/Maitreya20/care-tap-ai/internal/pkg/constvars"
	"go.uber.org/zap"
)

type auditService struct {
	repository contracts.AuditRepository
	publisher  contracts.AuditPublisher
	log        *zap.Logger
}

// NewAuditService composes the record write with the queue fan-out. The
// publisher may be nil when messaging is not configured.
func NewAuditService(repository contracts.AuditRepository, publisher contracts.AuditPublisher, log *zap.Logger) contracts.AuditService {
	return &auditService{
		repository: repository,
		publisher:  publisher,
		log:        log,
	}
}

// Record persists one audit entry. Failures are warned and swallowed: the
// audit trail is a side channel and must never abort the diagnosis response
// already computed.
func (s *auditService) Record(ctx context.Context, entry *models.AuditLog) {
	if _, err := s.repository.CreateAuditLog(ctx, entry); err != nil {
		s.log.Warn("auditService.Record failed to write audit log",
			zap.String(constvars.LoggingUserIDKey, entry.UserID),
			zap.String("action", entry.Action),
			zap.Error(err),
		)
	}

	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishAuditEvent(ctx, entry); err != nil {
		s.log.Warn("auditService.Record failed to publish audit event",
			zap.String(constvars.LoggingUserIDKey, entry.UserID),
			zap.String("action", entry.Action),
			zap.Error(err),
		)
	}
}
