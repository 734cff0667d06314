package api_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"

	"github.com/brewsim/coffeeshop/api"
	"github.com/brewsim/coffeeshop/core/analytics"
	"github.com/brewsim/coffeeshop/testutil"
)

func setupHistoryTestServer(recorder *analytics.Recorder) *httptest.Server {
	historyApi := api.NewHistoryApi(recorder)
	r := chi.NewRouter()
	historyApi.ConfigureRouter(r)
	return httptest.NewServer(r)
}

func TestHistoryGetUsage(t *testing.T) {
	recorder := analytics.NewRecorder()
	for i := 0; i < 5; i++ {
		recorder.RecordUsage(fmt.Sprintf("ingredient%d", i), 10, "coffee", "large hot expresso", 90)
	}

	ts := setupHistoryTestServer(recorder)
	defer ts.Close()

	tests := []struct {
		name string
		url  string

		wantCount int
		wantFirst string
	}{
		{
			name:      "default page returns everything",
			url:       "/usage",
			wantCount: 5,
			wantFirst: "ingredient4",
		},
		{
			name:      "limit and offset page through records",
			url:       "/usage?limit=2&offset=1",
			wantCount: 2,
			wantFirst: "ingredient3",
		},
		{
			name:      "offset beyond record count is clamped",
			url:       "/usage?offset=100",
			wantCount: 0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res := testutil.Get(ts.URL+test.url, t)

			if res.StatusCode != http.StatusOK {
				t.Errorf("status code got=%d want=%d", res.StatusCode, http.StatusOK)
			}

			got := []analytics.UsageRecord{}
			testutil.Unmarshal(res, &got, t)

			if len(got) != test.wantCount {
				t.Fatalf("unexpected record count got=%d want=%d", len(got), test.wantCount)
			}
			if test.wantCount > 0 && got[0].Item != test.wantFirst {
				t.Errorf("unexpected first record got=%s want=%s", got[0].Item, test.wantFirst)
			}
		})
	}
}

func TestHistoryGetPurchases(t *testing.T) {
	recorder := analytics.NewRecorder()
	recorder.RecordPurchase("Coffee Beans", 95, decimal.RequireFromString("14.25"), 100)

	ts := setupHistoryTestServer(recorder)
	defer ts.Close()

	res := testutil.Get(ts.URL+"/purchases", t)

	if res.StatusCode != http.StatusOK {
		t.Errorf("status code got=%d want=%d", res.StatusCode, http.StatusOK)
	}

	got := []analytics.PurchaseRecord{}
	testutil.Unmarshal(res, &got, t)

	if len(got) != 1 || got[0].AmountAdded != 95 {
		t.Errorf("unexpected purchases got=%+v", got)
	}
}

func TestHistoryGetTransactions(t *testing.T) {
	recorder := analytics.NewRecorder()
	recorder.RecordTransaction(analytics.Transaction{
		ID:            "tx-1",
		PaymentMethod: "cash",
		AmountCharged: decimal.RequireFromString("4.50"),
		Success:       true,
	})

	ts := setupHistoryTestServer(recorder)
	defer ts.Close()

	res := testutil.Get(ts.URL+"/transactions", t)

	if res.StatusCode != http.StatusOK {
		t.Errorf("status code got=%d want=%d", res.StatusCode, http.StatusOK)
	}

	got := []analytics.Transaction{}
	testutil.Unmarshal(res, &got, t)

	if len(got) != 1 || got[0].ID != "tx-1" {
		t.Errorf("unexpected transactions got=%+v", got)
	}
}

func TestHistoryGetDailyBreakdown(t *testing.T) {
	recorder := analytics.NewRecorder()
	recorder.RecordTransaction(analytics.Transaction{
		PaymentMethod: "cash",
		AmountCharged: decimal.RequireFromString("4.50"),
		Success:       true,
		Timestamp:     time.Now(),
	})

	ts := setupHistoryTestServer(recorder)
	defer ts.Close()

	res := testutil.Get(ts.URL+"/daily?days=3", t)

	if res.StatusCode != http.StatusOK {
		t.Errorf("status code got=%d want=%d", res.StatusCode, http.StatusOK)
	}

	got := []analytics.DailyEarnings{}
	testutil.Unmarshal(res, &got, t)

	if len(got) != 3 {
		t.Fatalf("unexpected day count got=%d want=%d", len(got), 3)
	}
	if got[2].Earnings.StringFixed(2) != "4.50" {
		t.Errorf("unexpected earnings got=%s want=%s", got[2].Earnings.StringFixed(2), "4.50")
	}
}
