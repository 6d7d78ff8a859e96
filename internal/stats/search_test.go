package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tawsil-app/ops-dashboard/internal/models"
)

func TestMatches_EmptyQueryMatchesEverything(t *testing.T) {
	entities := []models.Customer{
		{Name: "Ahmed"},
		{},
	}
	for _, e := range entities {
		assert.True(t, Matches("", e))
		assert.True(t, Matches("   ", e))
	}
}

func TestMatches_CaseInsensitiveSubstring(t *testing.T) {
	customer := models.Customer{Name: "Ahmed", Phone: "0501234567", Email: "ahmed@example.com", City: "Riyadh"}

	assert.True(t, Matches("ahm", customer))
	assert.True(t, Matches("AHM", customer))
	assert.True(t, Matches("riyadh", customer))
	assert.True(t, Matches("0501", customer))
	assert.False(t, Matches("jeddah", customer))
}

func TestMatches_MerchantCategory(t *testing.T) {
	merchant := models.Merchant{Name: "Burger Hub", Category: "restaurants"}

	assert.True(t, Matches("restau", merchant))
	assert.False(t, Matches("pharmacy", merchant))
}

func TestFilter(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "Ahmed"},
		{ID: 2, Name: "Sara"},
		{ID: 3, Name: "Mohammed"},
	}

	matched := Filter(customers, "med")

	assert.Len(t, matched, 2)
	assert.Equal(t, 1, matched[0].ID)
	assert.Equal(t, 3, matched[1].ID)

	assert.Equal(t, customers, Filter(customers, ""))
}
