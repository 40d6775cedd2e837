package domain

import "testing"

func catID(id uint) *uint { return &id }

func TestGroupProductsByCategory(t *testing.T) {
	categories := []Category{
		{ID: 1, Name: "Electronics"},
		{ID: 2, Name: "Books"},
		{ID: 3, Name: "Garden"},
	}
	products := []Product{
		{ID: 10, Name: "Headphones", CategoryID: catID(1)},
		{ID: 11, Name: "Novel", CategoryID: catID(2)},
		{ID: 12, Name: "Keyboard", CategoryID: catID(1)},
		{ID: 13, Name: "Orphan", CategoryID: nil},
		{ID: 14, Name: "Ghost", CategoryID: catID(99)},
	}

	grouped := GroupProductsByCategory(categories, products)

	if len(grouped) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(grouped))
	}

	// Category order is preserved
	for i, want := range []string{"Electronics", "Books", "Garden"} {
		if grouped[i].Name != want {
			t.Errorf("category %d = %q, want %q", i, grouped[i].Name, want)
		}
	}

	// Products land under their owning category, in row order
	if len(grouped[0].Products) != 2 {
		t.Fatalf("expected 2 electronics products, got %d", len(grouped[0].Products))
	}
	if grouped[0].Products[0].ID != 10 || grouped[0].Products[1].ID != 12 {
		t.Errorf("electronics products out of order: %d, %d",
			grouped[0].Products[0].ID, grouped[0].Products[1].ID)
	}
	if len(grouped[1].Products) != 1 || grouped[1].Products[0].ID != 11 {
		t.Errorf("unexpected books products: %+v", grouped[1].Products)
	}

	// Empty categories still carry a non-nil slice
	if grouped[2].Products == nil {
		t.Error("empty category should have non-nil products")
	}
	if len(grouped[2].Products) != 0 {
		t.Errorf("expected no garden products, got %d", len(grouped[2].Products))
	}
}

func TestGroupProductsByCategoryEmpty(t *testing.T) {
	grouped := GroupProductsByCategory(nil, nil)
	if len(grouped) != 0 {
		t.Errorf("expected empty result, got %d categories", len(grouped))
	}
}

func TestProductOnSale(t *testing.T) {
	discount := 9.99
	tests := []struct {
		name    string
		product Product
		want    bool
	}{
		{"with discount", Product{Price: 19.99, DiscountPrice: &discount}, true},
		{"without discount", Product{Price: 19.99}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.product.OnSale(); got != tt.want {
				t.Errorf("OnSale() = %v, want %v", got, tt.want)
			}
		})
	}
}
