package domain

// UserRecord holds the tracked holdings and the goal of one user.
// Asset keys are lowercase symbols, values are held quantities.
type UserRecord struct {
	Goal   int64              `json:"goal"`   // Target net worth in local currency, 0 means unset
	Assets map[string]float64 `json:"assets"` // Holdings keyed by lowercase symbol
}

// NewUserRecord returns an empty record with defaults
func NewUserRecord() *UserRecord {
	return &UserRecord{Assets: map[string]float64{}}
}
