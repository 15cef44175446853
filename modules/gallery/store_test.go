package gallery

import "testing"

func rec(id, title, desc string) VideoRecord {
	return VideoRecord{ID: id, Title: title, Description: desc, VideoURL: "data:video/mp4;base64,AAAA"}
}

func TestPrependOrdersNewestFirst(t *testing.T) {
	s := NewStore()
	s.Prepend(rec("a", "First", ""))
	s.Prepend(rec("b", "Second", ""))

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
	if all[0].ID != "b" || all[1].ID != "a" {
		t.Errorf("expected newest first, got [%s %s]", all[0].ID, all[1].ID)
	}
}

func TestPrependBatchKeepsBatchOrder(t *testing.T) {
	s := NewStore()
	s.Append(rec("old", "Old", ""))
	s.PrependBatch([]VideoRecord{
		rec("r1", `Remix of "Beach" (1/2)`, ""),
		rec("r2", `Remix of "Beach" (2/2)`, ""),
	})

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	want := []string{"r1", "r2", "old"}
	for i, id := range want {
		if all[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, all[i].ID, id)
		}
	}
}

func TestGet(t *testing.T) {
	s := NewStore()
	s.Prepend(rec("a", "Beach", ""))

	if _, ok := s.Get("a"); !ok {
		t.Error("expected to find record a")
	}
	if _, ok := s.Get("missing"); ok {
		t.Error("expected miss for unknown id")
	}
}

func TestFilter(t *testing.T) {
	s := NewStore()
	s.Append(rec("1", "Beach Sunset", "Waves rolling onto the sand."))
	s.Append(rec("2", "City Nights", "Neon lights over a wet beach boardwalk."))
	s.Append(rec("3", "Forest", "Morning fog between tall pines."))

	tests := []struct {
		name  string
		q     string
		want  []string
	}{
		{"empty query returns all", "", []string{"1", "2", "3"}},
		{"title match", "sunset", []string{"1"}},
		{"description match", "fog", []string{"3"}},
		{"case-insensitive across both fields", "BEACH", []string{"1", "2"}},
		{"no match", "desert", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := s.Filter(tc.q)
			if len(got) != len(tc.want) {
				t.Fatalf("Filter(%q) returned %d records, want %d", tc.q, len(got), len(tc.want))
			}
			for i, id := range tc.want {
				if got[i].ID != id {
					t.Errorf("Filter(%q)[%d] = %s, want %s", tc.q, i, got[i].ID, id)
				}
			}
		})
	}
}

func TestAllReturnsSnapshot(t *testing.T) {
	s := NewStore()
	s.Prepend(rec("a", "Beach", ""))

	snap := s.All()
	snap[0].Title = "mutated"

	if got, _ := s.Get("a"); got.Title != "Beach" {
		t.Error("mutating a snapshot must not touch the stored record")
	}
}
