// Package notify stores notifications as inbox rows the client applications
// poll. Emission is fire-and-forget: persistence failures are logged and
// swallowed so a notification can never undo the transition that caused it.
package notify

import (
	"context"
	"log/slog"
	"time"

	"orderflow/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationDTO is one inbox row.
type NotificationDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RecipientID uuid.UUID  `gorm:"type:uuid;index"`
	Kind        string
	Title       string
	Message     string
	OrderID     *uuid.UUID `gorm:"type:uuid"`
	IsRead      bool
	CreatedAt   time.Time
}

// TableName overrides GORM's default naming to use "notifications".
func (NotificationDTO) TableName() string {
	return "notifications"
}

// GormNotifier implements the Notifier port on top of the notifications table.
type GormNotifier struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormNotifier creates a database-backed notifier.
func NewGormNotifier(db *gorm.DB, logger *slog.Logger) *GormNotifier {
	return &GormNotifier{
		db:     db,
		logger: logger,
	}
}

// Notify persists the notification. Runs on the main connection, never the
// caller's transaction: by the time handlers notify, the transition has
// already committed.
func (n *GormNotifier) Notify(ctx context.Context, notification ports.Notification) {
	dto := NotificationDTO{
		ID:          uuid.New(),
		RecipientID: notification.Recipient.Bytes(),
		Kind:        string(notification.Kind),
		Title:       notification.Title,
		Message:     notification.Message,
		CreatedAt:   time.Now().UTC(),
	}
	if notification.OrderID != nil {
		raw := notification.OrderID.Bytes()
		dto.OrderID = &raw
	}

	if err := n.db.WithContext(ctx).Create(&dto).Error; err != nil {
		n.logger.Error("notification write failed",
			"kind", dto.Kind,
			"recipient", dto.RecipientID.String(),
			"error", err,
		)
	}
}
