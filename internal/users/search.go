// ABOUTME: Search and pagination over user records for table views
// ABOUTME: Matches name, email and username case-insensitively

package users

import (
	"strings"

	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
)

// PageSize is the number of rows per table page
const PageSize = 8

// Filter returns the records whose name, email or username contains term
func Filter(records []models.UserRecord, term string) []models.UserRecord {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return records
	}

	var out []models.UserRecord
	for _, u := range records {
		if strings.Contains(strings.ToLower(u.Name), term) ||
			strings.Contains(strings.ToLower(u.Email), term) ||
			strings.Contains(strings.ToLower(u.Username), term) {
			out = append(out, u)
		}
	}
	return out
}

// PageCount returns how many pages n records span (at least 1)
func PageCount(n, size int) int {
	if size <= 0 || n == 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Paginate returns the records on the 1-based page. Out-of-range pages are clamped.
func Paginate(records []models.UserRecord, page, size int) []models.UserRecord {
	if size <= 0 {
		return records
	}
	pages := PageCount(len(records), size)
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * size
	end := min(start+size, len(records))
	return records[start:end]
}
