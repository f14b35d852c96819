package discovery

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func TestListAllMarkets_Pagination(t *testing.T) {
	// Two full pages then a short one.
	pageSizes := []int{MaxBatchSize, MaxBatchSize, 7}
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		if got := offset; got != requests*MaxBatchSize {
			t.Errorf("expected offset %d, got %d", requests*MaxBatchSize, got)
		}

		if requests >= len(pageSizes) {
			t.Fatalf("unexpected extra request at offset %d", offset)
		}

		page := make([]map[string]any, pageSizes[requests])
		for i := range page {
			page[i] = map[string]any{
				"conditionId": fmt.Sprintf("cond-%d-%d", requests, i),
				"question":    "Will it?",
			}
		}
		requests++

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	client := NewClient(server.URL, 0, logger)

	markets, err := client.ListAllMarkets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := 2*MaxBatchSize + 7
	if len(markets) != want {
		t.Errorf("expected %d markets, got %d", want, len(markets))
	}

	if requests != 3 {
		t.Errorf("expected 3 requests, got %d", requests)
	}
}

func TestListAllMarkets_ConfiguredPageSize(t *testing.T) {
	const pageSize = 25

	var limits []int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		limits = append(limits, limit)

		// One full page, then a short one ends the scan.
		count := pageSize
		if len(limits) > 1 {
			count = 3
		}
		page := make([]map[string]any, count)
		for i := range page {
			page[i] = map[string]any{"conditionId": fmt.Sprintf("cond-%d", i)}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	client := NewClient(server.URL, pageSize, logger)

	markets, err := client.ListAllMarkets(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(markets) != pageSize+3 {
		t.Errorf("expected %d markets, got %d", pageSize+3, len(markets))
	}
	for _, limit := range limits {
		if limit != pageSize {
			t.Errorf("expected limit %d on every page, got %v", pageSize, limits)
			break
		}
	}

	// Out-of-range sizes fall back to the API maximum.
	if c := NewClient(server.URL, 0, logger); c.pageSize != MaxBatchSize {
		t.Errorf("pageSize for 0 = %d, want %d", c.pageSize, MaxBatchSize)
	}
	if c := NewClient(server.URL, MaxBatchSize+1, logger); c.pageSize != MaxBatchSize {
		t.Errorf("pageSize for %d = %d, want %d", MaxBatchSize+1, c.pageSize, MaxBatchSize)
	}
}

func TestListAllMarkets_PageFailureReturnsPartial(t *testing.T) {
	var requests int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests > 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		page := make([]map[string]any, MaxBatchSize)
		for i := range page {
			page[i] = map[string]any{"conditionId": fmt.Sprintf("cond-%d", i)}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	logger, _ := zap.NewDevelopment()
	client := NewClient(server.URL, 0, logger)

	markets, err := client.ListAllMarkets(context.Background())
	if err == nil {
		t.Fatal("expected error from failing second page")
	}

	if len(markets) != MaxBatchSize {
		t.Errorf("expected %d partial markets, got %d", MaxBatchSize, len(markets))
	}
}

func TestFlexFloat_Decoding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{name: "number", in: `{"v": 1.5}`, want: 1.5},
		{name: "string-number", in: `{"v": "2.25"}`, want: 2.25},
		{name: "null", in: `{"v": null}`, want: 0},
		{name: "absent", in: `{}`, want: 0},
		{name: "garbage-string", in: `{"v": "lots"}`, want: 0},
		{name: "wrong-type", in: `{"v": {"nested": true}}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out struct {
				V FlexFloat `json:"v"`
			}
			if err := json.Unmarshal([]byte(tt.in), &out); err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			if out.V.Float64() != tt.want {
				t.Errorf("expected %f, got %f", tt.want, out.V.Float64())
			}
		})
	}
}

func TestRawMarket_TokenIDs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "string-encoded", in: `{"clobTokenIds": "[\"tok1\",\"tok2\"]"}`, want: 2},
		{name: "plain-array", in: `{"clobTokenIds": ["tok1","tok2"]}`, want: 2},
		{name: "single-element", in: `{"clobTokenIds": ["tok1"]}`, want: 1},
		{name: "absent", in: `{}`, want: 0},
		{name: "malformed", in: `{"clobTokenIds": "not json"}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m RawMarket
			if err := json.Unmarshal([]byte(tt.in), &m); err != nil {
				t.Fatalf("unexpected decode error: %v", err)
			}
			if got := len(m.TokenIDs()); got != tt.want {
				t.Errorf("expected %d token ids, got %d", tt.want, got)
			}
		})
	}
}

func TestRawMarket_Prices(t *testing.T) {
	var m RawMarket
	err := json.Unmarshal([]byte(`{"outcomePrices": "[\"0.62\", \"0.38\"]"}`), &m)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	prices, ok := m.Prices()
	if !ok {
		t.Fatal("expected prices to decode")
	}
	if len(prices) != 2 || prices[0] != 0.62 || prices[1] != 0.38 {
		t.Errorf("unexpected prices: %v", prices)
	}

	var bad RawMarket
	_ = json.Unmarshal([]byte(`{"outcomePrices": "oops"}`), &bad)
	if _, ok := bad.Prices(); ok {
		t.Error("expected malformed prices to report not-ok")
	}
}

func TestRawReward_RateVariants(t *testing.T) {
	var m RawMarket
	raw := `{"rewards": [
		{"rewardsDailyRate": 10},
		{"dailyRate": "5.5"},
		{"rewards_daily_rate": 2}
	]}`
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		t.Fatalf("decode: %v", err)
	}

	var sum float64
	for i := range m.Rewards {
		sum += m.Rewards[i].Rate()
	}
	if sum != 17.5 {
		t.Errorf("expected summed rate 17.5, got %f", sum)
	}
}
