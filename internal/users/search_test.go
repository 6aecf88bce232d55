package users

import (
	"testing"

	"github.com/Mossaabs03254/My-CRUd-App/internal/models"
	"github.com/stretchr/testify/assert"
)

func sample(n int) []models.UserRecord {
	out := make([]models.UserRecord, n)
	for i := range out {
		out[i] = models.UserRecord{ID: i + 1}
	}
	return out
}

func TestFilter(t *testing.T) {
	records := []models.UserRecord{
		{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz"},
		{ID: 2, Name: "Ervin Howell", Username: "Antonette", Email: "Shanna@melissa.tv"},
		{ID: 3, Name: "Clementine Bauch", Username: "Samantha", Email: "Nathan@yesenia.net"},
	}

	tests := []struct {
		term string
		ids  []int
	}{
		{"", []int{1, 2, 3}},
		{"  ", []int{1, 2, 3}},
		{"leanne", []int{1}},
		{"ANTONETTE", []int{2}},
		{"melissa.tv", []int{2}},
		{"an", []int{1, 2, 3}},
		{"zzz", nil},
	}

	for _, tc := range tests {
		t.Run(tc.term, func(t *testing.T) {
			var ids []int
			for _, u := range Filter(records, tc.term) {
				ids = append(ids, u.ID)
			}
			assert.Equal(t, tc.ids, ids)
		})
	}
}

func TestPageCount(t *testing.T) {
	assert.Equal(t, 1, PageCount(0, PageSize))
	assert.Equal(t, 1, PageCount(8, PageSize))
	assert.Equal(t, 2, PageCount(9, PageSize))
	assert.Equal(t, 1, PageCount(5, 0))
}

func TestPaginate(t *testing.T) {
	records := sample(10)

	assert.Len(t, Paginate(records, 1, PageSize), 8)
	page2 := Paginate(records, 2, PageSize)
	assert.Len(t, page2, 2)
	assert.Equal(t, 9, page2[0].ID)

	assert.Equal(t, page2, Paginate(records, 7, PageSize), "pages past the end clamp to the last page")
	assert.Equal(t, 1, Paginate(records, 0, PageSize)[0].ID)
	assert.Empty(t, Paginate(nil, 1, PageSize))
}
