package updater

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	leak := flag.Bool("leak", false, "check for memory leaks")
	flag.Parse()

	if *leak {
		goleak.VerifyTestMain(m)
	} else {
		os.Exit(m.Run())
	}
}

func Test_Filters_Match(t *testing.T) {
	t.Parallel()

	item := CatalogItem{
		SKU:      "SKU-1",
		Name:     "Настольная лампа",
		Category: "Освещение",
		Price:    1500,
	}

	tests := []struct {
		name    string
		filters Filters
		item    CatalogItem
		expect  bool
	}{
		{
			name:    "happy flow",
			filters: Filters{},
			item:    item,
			expect:  true,
		},
		{
			name:    "within price range",
			filters: Filters{MinPrice: 1000, MaxPrice: 2000},
			item:    item,
			expect:  true,
		},
		{
			name:    "below min price",
			filters: Filters{MinPrice: 2000},
			item:    item,
			expect:  false,
		},
		{
			name:    "above max price",
			filters: Filters{MaxPrice: 1000},
			item:    item,
			expect:  false,
		},
		{
			name:    "category substring case insensitive",
			filters: Filters{Category: "освещ"},
			item:    item,
			expect:  true,
		},
		{
			name:    "category mismatch",
			filters: Filters{Category: "мебель"},
			item:    item,
			expect:  false,
		},
		{
			name:    "name substring",
			filters: Filters{Name: "лампа"},
			item:    item,
			expect:  true,
		},
		{
			name:    "name mismatch",
			filters: Filters{Name: "стол"},
			item:    item,
			expect:  false,
		},
		{
			name:    "excluded sku",
			filters: Filters{ExcludeSKUs: []string{"SKU-0", "SKU-1"}},
			item:    item,
			expect:  false,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.expect, test.filters.Match(test.item))
		})
	}
}

func Test_forEachBatch(t *testing.T) {
	t.Parallel()

	t.Run("chunks cover the whole range", func(t *testing.T) {
		t.Parallel()

		var chunks [][2]int
		forEachBatch(5, 2, 0, func(start, end int) {
			chunks = append(chunks, [2]int{start, end})
		})

		assert.Equal(t, [][2]int{{0, 2}, {2, 4}, {4, 5}}, chunks)
	})

	t.Run("empty range calls nothing", func(t *testing.T) {
		t.Parallel()

		calls := 0
		forEachBatch(0, 2, 0, func(start, end int) { calls++ })

		assert.Zero(t, calls)
	})

	t.Run("sleeps between consecutive chunks only", func(t *testing.T) {
		t.Parallel()

		delay := 20 * time.Millisecond

		start := time.Now()
		calls := 0
		forEachBatch(4, 2, delay, func(int, int) { calls++ })

		assert.Equal(t, 2, calls)
		assert.LessOrEqual(t, delay, time.Since(start))
	})
}
