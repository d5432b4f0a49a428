package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketstall/internal/domain"
	"github.com/gin-gonic/gin"
)

func TestCreateOrder_TrustsSubmittedTotal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	orders := &stubOrderService{}
	router, err := buildRouter(logDiscard(), nil, testDeps(nil, orders, nil, nil))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{
		"items": [
			{"productId":"p1","name":"Mug","priceCents":20},
			{"productId":"p2","name":"Shirt","priceCents":25}
		],
		"totalCents": 45,
		"buyerName": "Ada"
	}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rec.Code, rec.Body.String())
	}
	if orders.lastCreate.TotalCents != 45 {
		t.Fatalf("expected total 45 submitted as-is, got %d", orders.lastCreate.TotalCents)
	}

	var created domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.Status != domain.OrderStatusNew || created.TotalCents != 45 {
		t.Fatalf("unexpected order %+v", created)
	}
}

func TestCreateOrder_RequiresBuyerName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := buildRouter(logDiscard(), nil, testDeps(nil, nil, nil, nil))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	body := `{"items":[{"productId":"p1"}],"totalCents":10}`
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestListOrders_ReturnsEverything(t *testing.T) {
	gin.SetMode(gin.TestMode)
	orders := &stubOrderService{orders: []domain.Order{
		{ID: "o2", Status: domain.OrderStatusNew},
		{ID: "o1", Status: domain.OrderStatusShipped},
	}}
	router, err := buildRouter(logDiscard(), nil, testDeps(nil, orders, nil, nil))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var got []domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 || got[0].ID != "o2" {
		t.Fatalf("unexpected orders %+v", got)
	}
}

func TestShipOrder_IdempotentAtHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	orders := &stubOrderService{}
	router, err := buildRouter(logDiscard(), nil, testDeps(nil, orders, nil, nil))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/orders/o1/ship", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("call %d: expected 200, got %d body=%s", i+1, rec.Code, rec.Body.String())
		}
	}
	if orders.shipCalls != 2 || orders.lastShipID != "o1" {
		t.Fatalf("unexpected ship calls %d id=%s", orders.shipCalls, orders.lastShipID)
	}
}

func TestShipOrder_UnknownID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	orders := &stubOrderService{shipErr: domain.ErrNotFound}
	router, err := buildRouter(logDiscard(), nil, testDeps(nil, orders, nil, nil))
	if err != nil {
		t.Fatalf("build router: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/orders/missing/ship", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rec.Code, rec.Body.String())
	}
}
