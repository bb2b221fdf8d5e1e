package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kitchcrafter/storefront/internal/domain/cart"
)

// cartSnapshotModel is the GORM model for the single-key cart snapshot.
// The payload column holds the serialized line item array, exactly the
// shape the web widget kept under its local storage key.
type cartSnapshotModel struct {
	Key       string `gorm:"primaryKey;column:key"`
	Payload   string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName returns the table name for cart snapshots
func (cartSnapshotModel) TableName() string {
	return "cart_snapshots"
}

// CartSnapshotRepository implements cart.SnapshotRepository on top of
// the embedded database. One row per snapshot key; every save
// overwrites the previous payload.
type CartSnapshotRepository struct {
	db     *gorm.DB
	key    string
	logger *zap.Logger
}

// NewCartSnapshotRepository creates a repository bound to one snapshot key
func NewCartSnapshotRepository(db *Database, key string, log *zap.Logger) *CartSnapshotRepository {
	return &CartSnapshotRepository{
		db:     db.DB,
		key:    key,
		logger: log.Named("cart-snapshot"),
	}
}

// Save overwrites the stored snapshot with the given items
func (r *CartSnapshotRepository) Save(ctx context.Context, items []cart.LineItem) error {
	if items == nil {
		items = []cart.LineItem{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart snapshot: %w", err)
	}

	record := cartSnapshotModel{
		Key:       r.key,
		Payload:   string(payload),
		UpdatedAt: time.Now(),
	}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to persist cart snapshot: %w", err)
	}
	return nil
}

// Load returns the stored items. A missing row or an unreadable
// payload both load as an empty cart: stale storage must never block
// startup, so corruption is logged and treated as absence.
func (r *CartSnapshotRepository) Load(ctx context.Context) ([]cart.LineItem, error) {
	var record cartSnapshotModel
	err := r.db.WithContext(ctx).
		Where("key = ?", r.key).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []cart.LineItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart snapshot: %w", err)
	}

	var items []cart.LineItem
	if err := json.Unmarshal([]byte(record.Payload), &items); err != nil {
		r.logger.Warn("discarding corrupt cart snapshot",
			zap.String("key", r.key),
			zap.Error(err),
		)
		return []cart.LineItem{}, nil
	}
	return items, nil
}
