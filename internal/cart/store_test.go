package cart

import "testing"

func TestStoreAddAndDerivedValues(t *testing.T) {
	s := New()
	s.Add(Item{ProductID: "p1", Name: "Mug", PriceCents: 1299})
	s.Add(Item{ProductID: "p2", Name: "Shirt", PriceCents: 1999})

	if s.Count() != 2 {
		t.Fatalf("expected count 2, got %d", s.Count())
	}
	if s.TotalCents() != 3298 {
		t.Fatalf("expected total 3298, got %d", s.TotalCents())
	}
}

func TestStorePermitsDuplicates(t *testing.T) {
	s := New()
	s.Add(Item{ProductID: "p1", PriceCents: 100})
	s.Add(Item{ProductID: "p1", PriceCents: 100})

	if s.Count() != 2 {
		t.Fatalf("expected duplicate entries, got count %d", s.Count())
	}
	if s.TotalCents() != 200 {
		t.Fatalf("expected total 200, got %d", s.TotalCents())
	}
}

func TestStoreRemoveDropsAllMatches(t *testing.T) {
	s := New()
	s.Add(Item{ProductID: "p1", PriceCents: 100})
	s.Add(Item{ProductID: "p1", PriceCents: 100})

	s.Remove("p1")

	if s.Count() != 0 {
		t.Fatalf("expected empty cart after remove, got %d items", s.Count())
	}
	if s.TotalCents() != 0 {
		t.Fatalf("expected total 0, got %d", s.TotalCents())
	}
}

func TestStoreRemoveKeepsOtherProducts(t *testing.T) {
	s := New()
	s.Add(Item{ProductID: "p1", PriceCents: 100})
	s.Add(Item{ProductID: "p2", PriceCents: 250})
	s.Add(Item{ProductID: "p1", PriceCents: 100})

	s.Remove("p1")

	items := s.Items()
	if len(items) != 1 || items[0].ProductID != "p2" {
		t.Fatalf("unexpected items after remove: %+v", items)
	}
	if s.TotalCents() != 250 {
		t.Fatalf("expected total 250, got %d", s.TotalCents())
	}
}

func TestStoreClear(t *testing.T) {
	s := New()
	s.Add(Item{ProductID: "p1", PriceCents: 100})
	s.Clear()

	if s.Count() != 0 || s.TotalCents() != 0 {
		t.Fatalf("expected empty cart, got count=%d total=%d", s.Count(), s.TotalCents())
	}
}

func TestStoreCountMatchesItemsForAnySequence(t *testing.T) {
	type op struct {
		add    bool
		id     string
		cents  int64
		remove string
	}
	ops := []op{
		{add: true, id: "a", cents: 10},
		{add: true, id: "b", cents: 20},
		{add: true, id: "a", cents: 10},
		{remove: "b"},
		{add: true, id: "c", cents: 5},
		{remove: "a"},
		{add: true, id: "b", cents: 20},
	}

	s := New()
	for _, o := range ops {
		if o.add {
			s.Add(Item{ProductID: o.id, PriceCents: o.cents})
		} else {
			s.Remove(o.remove)
		}

		items := s.Items()
		if s.Count() != len(items) {
			t.Fatalf("count %d does not match %d items", s.Count(), len(items))
		}
		var want int64
		for _, item := range items {
			want += item.PriceCents
		}
		if s.TotalCents() != want {
			t.Fatalf("total %d does not match item sum %d", s.TotalCents(), want)
		}
	}
}
