// Homestead - Real Estate Listings and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/homestead

package recommend

import (
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/homestead/internal/models"
)

func newTestEngine(t *testing.T, cfg *Config) *Engine {
	t.Helper()
	if cfg == nil {
		cfg = DefaultConfig()
		cfg.Seed = 7
	}
	e, err := NewEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	e.SetClock(func() time.Time { return testNow })
	return e
}

func listing(id, city string, price float64) models.Property {
	return models.Property{
		ID:           id,
		Street:       id + " Main St",
		City:         city,
		State:        "WI",
		Zip:          "53202",
		Price:        price,
		Bedrooms:     3,
		Bathrooms:    2,
		SquareFeet:   1800,
		PropertyType: models.PropertyTypeHouse,
		CreatedAt:    testNow.AddDate(-1, 0, 0),
	}
}

func ids(props []models.Property) []string {
	out := make([]string, len(props))
	for i := range props {
		out[i] = props[i].ID
	}
	return out
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.MaxResultsCap = -1
	if _, err := NewEngine(cfg, zerolog.Nop()); err == nil {
		t.Fatal("expected error for negative max_results_cap")
	}

	cfg = DefaultConfig()
	cfg.MaxResultsCap = 3
	if _, err := NewEngine(cfg, zerolog.Nop()); err == nil {
		t.Fatal("expected error for cap below default_max_results")
	}

	cfg = DefaultConfig()
	cfg.RecencyWindow = 0
	if _, err := NewEngine(cfg, zerolog.Nop()); err == nil {
		t.Fatal("expected error for zero recency_window")
	}
}

func TestRecommend_MilwaukeePriceScenario(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	catalog := []models.Property{
		listing("a", "Milwaukee", 300000),
		listing("b", "Milwaukee", 450000),
		listing("c", "Milwaukee", 600000),
	}

	got := e.Recommend(catalog, Options{
		Location:   "Milwaukee",
		PriceRange: &PriceRange{Min: 400000, Max: 500000},
		MaxResults: IntPtr(2),
	})

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].ID != "b" {
		t.Errorf("expected the 450k listing first, got %s", got[0].ID)
	}

	c := newCriteria(&Options{Location: "Milwaukee", PriceRange: &PriceRange{Min: 400000, Max: 500000}},
		testNow, DefaultConfig().RecencyWindow)
	if s := c.score(&catalog[1]); s != 70 {
		t.Errorf("expected score 70 for the 450k listing, got %d", s)
	}
	// 300k and 600k tie at 50; the earlier one wins.
	if got[1].ID != "a" {
		t.Errorf("expected tie broken by input order, got %s", got[1].ID)
	}
}

func TestRecommend_ScoresAllCriteria(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)

	plain := listing("plain", "Milwaukee", 450000)
	rich := listing("rich", "Milwaukee", 450000)
	rich.PropertyType = models.PropertyTypeCondo
	rich.Features = []string{"garage", "pool"}
	rich.CreatedAt = testNow.Add(-48 * time.Hour)
	elsewhere := listing("elsewhere", "Chicago", 450000)
	elsewhere.State = "IL"
	elsewhere.Zip = "60601"

	got := e.Recommend([]models.Property{elsewhere, plain, rich}, Options{
		Location:          "milwaukee",
		PriceRange:        &PriceRange{Min: 400000, Max: 500000},
		PropertyTypes:     []string{models.PropertyTypeCondo},
		PreferredFeatures: []string{"garage", "pool"},
	})

	want := []string{"rich", "plain", "elsewhere"}
	if !reflect.DeepEqual(ids(got), want) {
		t.Errorf("order = %v, want %v", ids(got), want)
	}
}

func TestRecommend_StableTies(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	catalog := make([]models.Property, 8)
	for i := range catalog {
		catalog[i] = listing(fmt.Sprintf("p%d", i), "Milwaukee", 450000)
	}

	got := e.Recommend(catalog, Options{Location: "Milwaukee", MaxResults: IntPtr(8)})
	if !reflect.DeepEqual(ids(got), ids(catalog)) {
		t.Errorf("tied listings reordered: %v", ids(got))
	}
}

func TestRecommend_MaxResults(t *testing.T) {
	t.Parallel()

	catalog := make([]models.Property, 12)
	for i := range catalog {
		catalog[i] = listing(fmt.Sprintf("p%d", i), "Milwaukee", 100000)
	}

	tests := []struct {
		name     string
		location string
		max      *int
		want     int
	}{
		{"scored default", "Milwaukee", nil, 5},
		{"random default", "", nil, 5},
		{"scored zero", "Milwaukee", IntPtr(0), 0},
		{"random zero", "", IntPtr(0), 0},
		{"negative", "Milwaukee", IntPtr(-3), 0},
		{"larger than catalog", "Milwaukee", IntPtr(50), 12},
		{"random larger than catalog", "", IntPtr(50), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := newTestEngine(t, nil)
			got := e.Recommend(catalog, Options{Location: tt.location, MaxResults: tt.max})
			if got == nil {
				t.Fatal("result must be non-nil")
			}
			if len(got) != tt.want {
				t.Errorf("len = %d, want %d", len(got), tt.want)
			}
		})
	}
}

func TestRecommend_UncappedByDefault(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	catalog := make([]models.Property, 150)
	for i := range catalog {
		catalog[i] = listing(fmt.Sprintf("p%d", i), "Milwaukee", 100000)
	}

	if got := e.Recommend(catalog, Options{MaxResults: IntPtr(120)}); len(got) != 120 {
		t.Errorf("random branch: len = %d, want 120", len(got))
	}
	if got := e.Recommend(catalog, Options{Location: "Milwaukee", MaxResults: IntPtr(500)}); len(got) != 150 {
		t.Errorf("scored branch: len = %d, want 150", len(got))
	}
}

func TestRecommend_MaxResultsCap(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.MaxResultsCap = 3
	cfg.DefaultMaxResults = 2
	e := newTestEngine(t, cfg)

	catalog := make([]models.Property, 10)
	for i := range catalog {
		catalog[i] = listing(fmt.Sprintf("p%d", i), "Milwaukee", 100000)
	}
	if got := e.Recommend(catalog, Options{Location: "Milwaukee", MaxResults: IntPtr(9)}); len(got) != 3 {
		t.Errorf("expected cap of 3, got %d", len(got))
	}
	if got := e.Recommend(catalog, Options{Location: "Milwaukee"}); len(got) != 2 {
		t.Errorf("expected default of 2, got %d", len(got))
	}
}

func TestRecommend_EmptyCatalog(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	for _, loc := range []string{"", "Milwaukee"} {
		got := e.Recommend(nil, Options{Location: loc})
		if got == nil || len(got) != 0 {
			t.Errorf("location %q: expected empty non-nil slice, got %v", loc, got)
		}
	}
}

func TestRecommend_RandomBranchReturnsSubset(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	catalog := make([]models.Property, 20)
	known := make(map[string]bool, len(catalog))
	for i := range catalog {
		catalog[i] = listing(fmt.Sprintf("p%d", i), "Anywhere", float64(100000+i))
		known[catalog[i].ID] = true
	}

	got := e.Recommend(catalog, Options{Location: "   ", MaxResults: IntPtr(7)})
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
	seen := make(map[string]bool)
	for _, p := range got {
		if !known[p.ID] {
			t.Errorf("unknown listing %s", p.ID)
		}
		if seen[p.ID] {
			t.Errorf("duplicate listing %s", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestRecommend_SeededShuffleIsReproducible(t *testing.T) {
	t.Parallel()

	catalog := make([]models.Property, 30)
	for i := range catalog {
		catalog[i] = listing(fmt.Sprintf("p%d", i), "Anywhere", 100000)
	}

	cfg := DefaultConfig()
	cfg.Seed = 99
	a := newTestEngine(t, cfg.Clone())
	b := newTestEngine(t, cfg.Clone())

	for i := 0; i < 3; i++ {
		ra := ids(a.Recommend(catalog, Options{MaxResults: IntPtr(10)}))
		rb := ids(b.Recommend(catalog, Options{MaxResults: IntPtr(10)}))
		if !reflect.DeepEqual(ra, rb) {
			t.Fatalf("round %d: %v != %v", i, ra, rb)
		}
	}
}

func TestRecommend_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	catalog := []models.Property{
		listing("a", "Madison", 300000),
		listing("b", "Milwaukee", 450000),
		listing("c", "Milwaukee", 600000),
	}
	catalog[1].Features = []string{"garage"}
	before := make([]models.Property, len(catalog))
	for i := range catalog {
		before[i] = cloneProperty(&catalog[i])
	}

	got := e.Recommend(catalog, Options{Location: "Milwaukee", PreferredFeatures: []string{"garage"}})
	got[0].Features[0] = "changed"
	got[0].City = "changed"
	_ = e.Recommend(catalog, Options{})

	if !reflect.DeepEqual(catalog, before) {
		t.Errorf("input catalog was modified")
	}
}

func TestRecommend_ConcurrentUse(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, nil)
	catalog := make([]models.Property, 50)
	for i := range catalog {
		catalog[i] = listing(fmt.Sprintf("p%d", i), "Milwaukee", float64(300000+i*5000))
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			opts := Options{MaxResults: IntPtr(5)}
			if i%2 == 0 {
				opts.Location = "Milwaukee"
				opts.PriceRange = &PriceRange{Min: 400000, Max: 450000}
			}
			if got := e.Recommend(catalog, opts); len(got) != 5 {
				t.Errorf("goroutine %d: len = %d", i, len(got))
			}
		}(i)
	}
	wg.Wait()
}

func TestBranchFor(t *testing.T) {
	t.Parallel()

	if BranchFor(&Options{}) != BranchRandom {
		t.Error("empty location should be random")
	}
	if BranchFor(&Options{Location: "\t"}) != BranchRandom {
		t.Error("blank location should be random")
	}
	if BranchFor(&Options{Location: "53202"}) != BranchScored {
		t.Error("zip location should be scored")
	}
}
