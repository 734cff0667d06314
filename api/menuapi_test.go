package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"

	"github.com/brewsim/coffeeshop/api"
	"github.com/brewsim/coffeeshop/core/catalog"
	"github.com/brewsim/coffeeshop/testutil"
)

func setupMenuTestServer() *httptest.Server {
	menuApi := api.NewMenuApi(catalog.Default())
	r := chi.NewRouter()
	menuApi.ConfigureRouter(r)
	return httptest.NewServer(r)
}

func TestMenuGetAll(t *testing.T) {
	ts := setupMenuTestServer()
	defer ts.Close()

	res := testutil.Get(ts.URL, t)

	if res.StatusCode != http.StatusOK {
		t.Errorf("status code got=%d want=%d", res.StatusCode, http.StatusOK)
	}

	got := []catalog.Item{}
	testutil.Unmarshal(res, &got, t)

	if len(got) == 0 {
		t.Fatal("expected menu items")
	}
}

func TestMenuGetCoffee(t *testing.T) {
	ts := setupMenuTestServer()
	defer ts.Close()

	res := testutil.Get(ts.URL+"/coffee", t)

	if res.StatusCode != http.StatusOK {
		t.Errorf("status code got=%d want=%d", res.StatusCode, http.StatusOK)
	}

	got := &api.MenuResponse{}
	testutil.Unmarshal(res, got, t)

	if len(got.Categories["latte"]) == 0 {
		t.Errorf("expected latte category to be populated")
	}
	for category, items := range got.Categories {
		for _, item := range items {
			if item.Kind != catalog.KindCoffee {
				t.Errorf("category %s contains non coffee item %s", category, item.Name)
			}
		}
	}
}

func TestMenuSearch(t *testing.T) {
	ts := setupMenuTestServer()
	defer ts.Close()

	res := testutil.Get(ts.URL+"/search?q=bagel", t)

	if res.StatusCode != http.StatusOK {
		t.Errorf("status code got=%d want=%d", res.StatusCode, http.StatusOK)
	}

	got := []catalog.Item{}
	testutil.Unmarshal(res, &got, t)

	if len(got) < 2 {
		t.Errorf("unexpected result count got=%d want at least 2", len(got))
	}
}

func TestMenuSearchMissingQuery(t *testing.T) {
	ts := setupMenuTestServer()
	defer ts.Close()

	res := testutil.Get(ts.URL+"/search", t)

	if res.StatusCode != http.StatusBadRequest {
		t.Errorf("status code got=%d want=%d", res.StatusCode, http.StatusBadRequest)
	}
}

func TestMenuGetItem(t *testing.T) {
	ts := setupMenuTestServer()
	defer ts.Close()

	tests := []struct {
		name string
		path string

		wantStatusCode int
		wantItem       string
	}{
		{
			name:           "coffee by id",
			path:           "/coffee/medium_oatmilk_hot_latte",
			wantStatusCode: http.StatusOK,
			wantItem:       "medium oatmilk hot latte",
		},
		{
			name:           "bakery by id",
			path:           "/food/plain_bagel",
			wantStatusCode: http.StatusOK,
			wantItem:       "Plain Bagel",
		},
		{
			name:           "unknown kind",
			path:           "/tea/earl_grey",
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "unknown item",
			path:           "/coffee/pumpkin_spice_unicorn_frappe",
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := testutil.Get(ts.URL+test.path, t)

			if res.StatusCode != test.wantStatusCode {
				t.Errorf("status code got=%d want=%d", res.StatusCode, test.wantStatusCode)
			}

			if test.wantItem != "" {
				got := &api.ItemResponse{}
				testutil.Unmarshal(res, got, t)
				if got.Name != test.wantItem {
					t.Errorf("unexpected item got=%s want=%s", got.Name, test.wantItem)
				}
			}
		})
	}
}
