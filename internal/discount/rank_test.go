package discount

import (
	"testing"

	"alumnirabatt/internal/models"

	"github.com/stretchr/testify/assert"
)

func cond(s string) *string { return &s }

func brands(ds []models.Discount) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.Brand
	}
	return out
}

func TestRank_PrefixMatchesFirst(t *testing.T) {
	ds := []models.Discount{
		{ID: "1", Brand: "Puma"},
		{ID: "2", Brand: "Nikeshop"},
		{ID: "3", Brand: "Nike"},
	}
	Rank(ds, "nike")
	assert.Equal(t, []string{"Nike", "Nikeshop", "Puma"}, brands(ds))
}

func TestRank_ConditionBreaksPrefixTie(t *testing.T) {
	ds := []models.Discount{
		{ID: "1", Brand: "Nike", Condition: cond("Minst 300 kr")},
		{ID: "2", Brand: "Nikeshop"},
		{ID: "3", Brand: "Puma"},
	}
	Rank(ds, "NIKE")
	assert.Equal(t, []string{"Nikeshop", "Nike", "Puma"}, brands(ds))
}

func TestRank_SubstringAfterPrefix(t *testing.T) {
	ds := []models.Discount{
		{ID: "1", Brand: "Adidas"},
		{ID: "2", Brand: "Stadium Outlet"},
		{ID: "3", Brand: "Outlet Store"},
	}
	Rank(ds, "outlet")
	assert.Equal(t, []string{"Outlet Store", "Stadium Outlet", "Adidas"}, brands(ds))
}

func TestRank_SwedishAlphabetical(t *testing.T) {
	ds := []models.Discount{
		{ID: "1", Brand: "Åhléns Bok"},
		{ID: "2", Brand: "Zara Bok"},
		{ID: "3", Brand: "Adlibris Bok"},
	}
	Rank(ds, "bok")
	// Å sorts after Z in Swedish.
	assert.Equal(t, []string{"Adlibris Bok", "Zara Bok", "Åhléns Bok"}, brands(ds))
}

func TestRank_StableForEqualKeys(t *testing.T) {
	ds := []models.Discount{
		{ID: "stuk://1", Brand: "Puma", Provider: models.ProviderStudentkortet},
		{ID: "stuk://2", Brand: "Puma", Provider: models.ProviderMecenat},
		{ID: "stuk://3", Brand: "Reebok", Provider: models.ProviderStudentkortet},
	}
	Rank(ds, "nike")
	assert.Equal(t, "stuk://1", ds[0].ID)
	assert.Equal(t, "stuk://2", ds[1].ID)
	assert.Equal(t, "stuk://3", ds[2].ID)
}

func TestRank_DoesNotMutateBrand(t *testing.T) {
	ds := []models.Discount{{ID: "1", Brand: "NIKE"}}
	Rank(ds, "nike")
	assert.Equal(t, "NIKE", ds[0].Brand)
}

func TestRank_Empty(t *testing.T) {
	var ds []models.Discount
	Rank(ds, "nike")
	assert.Empty(t, ds)
}
