package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"

	"github.com/brewsim/coffeeshop/api"
	"github.com/brewsim/coffeeshop/config"
	"github.com/brewsim/coffeeshop/core/analytics"
	"github.com/brewsim/coffeeshop/core/catalog"
	"github.com/brewsim/coffeeshop/core/inventory"
	"github.com/brewsim/coffeeshop/core/order"
	"github.com/brewsim/coffeeshop/core/payment"
	"github.com/brewsim/coffeeshop/core/staff"
)

func TestCorsConfig(t *testing.T) {
	tests := []struct {
		origin string
		want   string
	}{
		{origin: "https://evilorigin.com", want: ""},
		{origin: "http://evilorigin.com", want: ""},
		{origin: "http://localhost:8080", want: "http://localhost:8080"},
		{origin: "http://localhost:3000", want: "http://localhost:3000"},
		{origin: "https://localhost:8080", want: "https://localhost:8080"},
		{origin: "https://localhost:3000", want: "https://localhost:3000"},
		{origin: "https://localhostevil:3000", want: ""},
	}

	r := getRouter()
	ts := httptest.NewServer(r)
	defer ts.Close()

	client := http.DefaultClient
	url := ts.URL + "/api/v1/menu"

	for _, test := range tests {
		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			t.Fatal(err)
		}
		req.Header.Add("Origin", test.origin)

		res, err := client.Do(req)
		if err != nil {
			t.Fatal(err)
		}

		got := res.Header.Get("Access-Control-Allow-Origin")
		if got != test.want {
			t.Errorf("failed cors test got=[%v] want=[%v]", got, test.want)
		}
	}
}

func TestHealth(t *testing.T) {
	r := getRouter()
	ts := httptest.NewServer(r)
	defer ts.Close()

	res, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}

	if res.StatusCode != http.StatusOK {
		t.Errorf("status code got=%d want=%d", res.StatusCode, http.StatusOK)
	}
}

func getRouter() chi.Router {
	cfg := config.LoadDefaults()
	mockStaff := staff.NewMockStaffService()

	return api.ConfigureRouter(cfg, api.Services{
		Inventory: inventory.NewMockInventoryService(),
		Order:     order.NewMockOrderService(),
		Payment:   payment.NewMockPaymentService(),
		History:   analytics.NewRecorder(),
		Menu:      catalog.Default(),
		Staff:     &mockStaff,
	})
}
