package domain

// UserRow is the database representation of a UserRecord (mysql backend)
type UserRow struct {
	UserID     string `gorm:"primaryKey;size:64"`   // Platform-assigned user identifier
	Goal       int64  `gorm:"not null;default:0"`   // Target net worth in local currency
	AssetsJSON string `gorm:"type:text"`            // Holdings serialized as JSON
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli"` // Timestamp of last update in milliseconds
}
