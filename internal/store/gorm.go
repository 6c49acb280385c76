package store

import (
	"context"                    // Context for database operations
	"crypto_bot/internal/domain" // Importing domain models
	"encoding/json"              // JSON encoding/decoding

	"gorm.io/gorm"        // GORM ORM library
	"gorm.io/gorm/clause" // Upsert clauses
)

// Compile-time check to ensure GormStore implements Store
var _ Store = (*GormStore)(nil)

// GormStore keeps one database row per user (mysql backend)
type GormStore struct {
	db *gorm.DB // Database handle
}

// NewGormStore returns a store backed by the given database
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Load reads all user rows into the in-memory mapping
func (s *GormStore) Load(ctx context.Context) (map[string]*domain.UserRecord, error) {
	var rows []domain.UserRow // All user rows
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	users := make(map[string]*domain.UserRecord, len(rows))
	for _, row := range rows {
		rec := domain.NewUserRecord() // Record with defaults
		rec.Goal = row.Goal
		if row.AssetsJSON != "" {
			if err := json.Unmarshal([]byte(row.AssetsJSON), &rec.Assets); err != nil {
				return nil, err // Corrupt row, surface the error
			}
		}
		users[row.UserID] = rec
	}
	return users, nil
}

// Save upserts one row per user. Records are never deleted, so rows absent from
// the mapping cannot exist and no delete pass is needed.
func (s *GormStore) Save(ctx context.Context, users map[string]*domain.UserRecord) error {
	for id, rec := range users {
		b, err := json.Marshal(rec.Assets) // Serialize holdings to JSON
		if err != nil {
			return err
		}
		row := domain.UserRow{UserID: id, Goal: rec.Goal, AssetsJSON: string(b)}
		// Insert the row, or update goal and holdings when it already exists
		err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"goal", "assets_json"}),
		}).Create(&row).Error
		if err != nil {
			return err
		}
	}
	return nil
}
