package catalog_test

import (
	"errors"
	"testing"

	"github.com/brewsim/coffeeshop/core"
	"github.com/brewsim/coffeeshop/core/catalog"
)

func TestResolve(t *testing.T) {
	c := catalog.Default()

	tests := []struct {
		name string
		kind catalog.Kind
		id   string

		wantItem string
		wantErr  error
	}{
		{
			name:     "exact id match",
			kind:     catalog.KindCoffee,
			id:       "medium_oatmilk_hot_latte",
			wantItem: "medium oatmilk hot latte",
		},
		{
			name:     "exact name match",
			kind:     catalog.KindFood,
			id:       "Cinnamon Roll",
			wantItem: "Cinnamon Roll",
		},
		{
			name:     "normalized underscore match",
			kind:     catalog.KindFood,
			id:       "cinnamon_roll",
			wantItem: "Cinnamon Roll",
		},
		{
			name:     "component match tolerates one missing token",
			kind:     catalog.KindCoffee,
			id:       "venti_oatmilk_hot_latte",
			wantItem: "medium oatmilk hot latte",
		},
		{
			name:    "unknown item",
			kind:    catalog.KindCoffee,
			id:      "pumpkin_spice_unicorn_frappe",
			wantErr: core.ErrItemNotFound,
		},
		{
			name:    "wrong kind",
			kind:    catalog.KindCoffee,
			id:      "cinnamon_roll",
			wantErr: core.ErrItemNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := c.Resolve(test.kind, test.id)

			if test.wantErr != nil {
				if !errors.Is(err, test.wantErr) {
					t.Errorf("unexpected error got=%v want=%v", err, test.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("did not want error, got=%v", err)
			}
			if got.Name != test.wantItem {
				t.Errorf("unexpected item got=%s want=%s", got.Name, test.wantItem)
			}
		})
	}
}

func TestResolveCaching(t *testing.T) {
	c := catalog.Default()

	first, err := c.Resolve(catalog.KindCoffee, "large_hot_expresso")
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Resolve(catalog.KindCoffee, "large_hot_expresso")
	if err != nil {
		t.Fatal(err)
	}

	if first.Name != second.Name {
		t.Errorf("cached resolution diverged got=%s want=%s", second.Name, first.Name)
	}
}

func TestParseKind(t *testing.T) {
	if _, err := catalog.ParseKind("coffee"); err != nil {
		t.Errorf("did not want error, got=%v", err)
	}
	if _, err := catalog.ParseKind("food"); err != nil {
		t.Errorf("did not want error, got=%v", err)
	}
	if _, err := catalog.ParseKind("tea"); err == nil {
		t.Errorf("expected error, got none")
	}
}

func TestItemID(t *testing.T) {
	got := catalog.ItemID("medium oatmilk hot latte")
	want := "medium_oatmilk_hot_latte"
	if got != want {
		t.Errorf("unexpected id got=%s want=%s", got, want)
	}
}

func TestByCategory(t *testing.T) {
	c := catalog.Default()

	categories := c.ByCategory(catalog.KindCoffee)
	if len(categories["latte"]) == 0 {
		t.Errorf("expected latte category to be populated")
	}
	for category, items := range categories {
		for _, item := range items {
			if item.Kind != catalog.KindCoffee {
				t.Errorf("category %s contains non coffee item %s", category, item.Name)
			}
		}
	}
}

func TestSearch(t *testing.T) {
	c := catalog.Default()

	results := c.Search("bagel")
	if len(results) < 2 {
		t.Fatalf("unexpected result count got=%d want at least 2", len(results))
	}
}

func TestRecipeFor(t *testing.T) {
	c := catalog.Default()

	item, err := c.Resolve(catalog.KindCoffee, "medium_oatmilk_hot_latte")
	if err != nil {
		t.Fatal(err)
	}

	names, quantities := catalog.RecipeFor(item)
	if len(names) == 0 {
		t.Fatal("expected ingredients")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("ingredient names not sorted: %v", names)
		}
	}
	if quantities["Oat Milk"] != 110 {
		t.Errorf("unexpected oat milk quantity got=%d want=%d", quantities["Oat Milk"], 110)
	}
}
