package contracts

import (
	"context"

	"github.com/Maitreya20/care-tap-ai/internal/app/models"
)

type AuditRepository interface {
	CreateAuditLog(ctx context.Context, entry *models.AuditLog) (auditID string, err error)
}

type AuditPublisher interface {
	PublishAuditEvent(ctx context.Context, entry *models.AuditLog) error
}

// AuditService records one inference invocation. Record is best-effort: any
// storage or publish failure is logged and swallowed so it cannot affect the
// already-computed response.
type AuditService interface {
	Record(ctx context.Context, entry *models.AuditLog)
}
