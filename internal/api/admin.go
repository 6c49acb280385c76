package api

import (
	"crypto_bot/internal/store" // User store
	"net/http"                  // HTTP status codes
	"sort"                      // Stable listing order

	"github.com/gin-gonic/gin" // Gin web framework
)

// UserAdminResponse is one row of the admin user listing
type UserAdminResponse struct {
	UserID     string `json:"user_id"`     // Platform-assigned user identifier
	Goal       int64  `json:"goal"`        // Target net worth in local currency
	AssetCount int    `json:"asset_count"` // Number of tracked holdings
}

// ListUsersHandler returns every tracked user with goal and holding count
func ListUsersHandler(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := st.Load(c.Request.Context()) // Load the full store snapshot
		if err != nil {
			// If loading fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
			return
		}
		resp := make([]UserAdminResponse, 0, len(users)) // Build the listing
		for id, rec := range users {
			resp = append(resp, UserAdminResponse{
				UserID:     id,              // User identifier
				Goal:       rec.Goal,        // Current goal
				AssetCount: len(rec.Assets), // Tracked holdings
			})
		}
		// Sort by user identifier for a stable listing
		sort.Slice(resp, func(i, j int) bool { return resp[i].UserID < resp[j].UserID })
		// Return the listing with the total count
		c.JSON(http.StatusOK, gin.H{"users": resp, "total": len(resp)})
	}
}
