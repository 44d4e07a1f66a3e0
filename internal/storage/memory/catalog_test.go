package memory_test

import (
	"errors"
	"testing"

	"kenyastay/internal/domain"
	"kenyastay/internal/storage/memory"
)

func pint(i int) *int { return &i }

func TestAll_SeedOrderAndSize(t *testing.T) {
	c := memory.New()
	all := c.All()
	if len(all) != 6 {
		t.Fatalf("expected 6 hotels, got %d", len(all))
	}
	for i, h := range all {
		if h.ID != i+1 {
			t.Fatalf("seed order broken at index %d: id=%d", i, h.ID)
		}
	}
	if all[0].Name != "Sarova Stanley" || all[0].Price != 12000 {
		t.Fatalf("unexpected first hotel: %+v", all[0])
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	c := memory.New()
	c.All()[0].Name = "mutated"
	if c.All()[0].Name != "Sarova Stanley" {
		t.Fatal("All must not expose the backing table")
	}
}

func TestByID(t *testing.T) {
	c := memory.New()
	h, err := c.ByID(3)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if h.Name != "Imperial Hotel Kisumu" {
		t.Fatalf("unexpected hotel: %+v", h)
	}

	if _, err := c.ByID(999); !errors.Is(err, domain.ErrHotelNotFound) {
		t.Fatalf("expected ErrHotelNotFound, got %v", err)
	}
}

func TestByLocation_CaseFolded(t *testing.T) {
	c := memory.New()
	for _, loc := range []string{"Nairobi", "nairobi", "NAIROBI"} {
		got := c.ByLocation(loc)
		if len(got) != 2 {
			t.Fatalf("ByLocation(%q): expected 2, got %d", loc, len(got))
		}
		if got[0].ID != 1 || got[1].ID != 5 {
			t.Fatalf("ByLocation(%q): order broken: %v %v", loc, got[0].ID, got[1].ID)
		}
	}
	if got := c.ByLocation("Eldoret"); len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
	// substring must not match: exact equality only
	if got := c.ByLocation("Nairo"); len(got) != 0 {
		t.Fatalf("partial location matched: %d", len(got))
	}
}

func TestLocations_FirstOccurrenceOrder(t *testing.T) {
	c := memory.New()
	got := c.Locations()
	want := []string{"Nairobi", "Mombasa", "Kisumu", "Nakuru"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestSearch_SingleCriteria(t *testing.T) {
	c := memory.New()

	if got := c.Search(domain.SearchQuery{}); len(got) != 6 {
		t.Fatalf("empty query should return everything, got %d", len(got))
	}
	if got := c.Search(domain.SearchQuery{Location: "momba"}); len(got) != 2 {
		t.Fatalf("location substring: expected 2, got %d", len(got))
	}
	if got := c.Search(domain.SearchQuery{MinPrice: pint(12000)}); len(got) != 3 {
		t.Fatalf("minPrice inclusive: expected 3, got %d", len(got))
	}
	if got := c.Search(domain.SearchQuery{MaxPrice: pint(9500)}); len(got) != 2 {
		t.Fatalf("maxPrice inclusive: expected 2, got %d", len(got))
	}
	if got := c.Search(domain.SearchQuery{Type: "deluxe"}); len(got) != 2 {
		t.Fatalf("type substring: expected 2, got %d", len(got))
	}
}

func TestSearch_ANDSemanticsAndOrder(t *testing.T) {
	c := memory.New()
	got := c.Search(domain.SearchQuery{
		Location: "mombasa",
		MinPrice: pint(14000),
	})
	if len(got) != 1 || got[0].Name != "Diani Reef Beach Resort" {
		t.Fatalf("unexpected result: %+v", got)
	}

	// combined result equals the intersection of single-criterion filters,
	// order preserved from All()
	byLoc := c.Search(domain.SearchQuery{Location: "a"})
	byType := c.Search(domain.SearchQuery{Type: "e"})
	combined := c.Search(domain.SearchQuery{Location: "a", Type: "e"})

	inType := map[int]bool{}
	for _, h := range byType {
		inType[h.ID] = true
	}
	want := []int{}
	for _, h := range byLoc {
		if inType[h.ID] {
			want = append(want, h.ID)
		}
	}
	if len(combined) != len(want) {
		t.Fatalf("intersection size: want %d, got %d", len(want), len(combined))
	}
	for i, h := range combined {
		if h.ID != want[i] {
			t.Fatalf("order not preserved: want %v, got %+v", want, combined)
		}
	}
}

func TestSearch_NoMatches(t *testing.T) {
	c := memory.New()
	got := c.Search(domain.SearchQuery{Location: "zanzibar"})
	if len(got) != 0 {
		t.Fatalf("expected empty, got %d", len(got))
	}
}
