package httpserver

import (
	"context"
	"io"
	"log"
	"net/http"
	"testing"
	"time"

	"marketstall/internal/domain"
	ordersvc "marketstall/internal/service/order"
	productsvc "marketstall/internal/service/product"
	usersvc "marketstall/internal/service/user"
	"marketstall/internal/storage"
	"github.com/golang-jwt/jwt/v5"
)

const testAuthSecret = "test-secret"

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func bearerToken(t *testing.T, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testAuthSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return "Bearer " + signed
}

type stubProductService struct {
	ownerViews  []productsvc.View
	publicViews []productsvc.View
	getView     *productsvc.View
	created     *domain.Product
	createErr   error
	deleteErr   error

	lastOwnerSubject  string
	lastCreateSubject string
	lastCreateInput   productsvc.CreateInput
	lastDeleteSubject string
	lastDeleteID      string
}

func (s *stubProductService) ListForOwner(_ context.Context, callerSubject string) ([]productsvc.View, error) {
	s.lastOwnerSubject = callerSubject
	if callerSubject == "" {
		return []productsvc.View{}, nil
	}
	return s.ownerViews, nil
}

func (s *stubProductService) ListPublic(_ context.Context) ([]productsvc.View, error) {
	return s.publicViews, nil
}

func (s *stubProductService) Get(_ context.Context, _ string) (*productsvc.View, error) {
	return s.getView, nil
}

func (s *stubProductService) Create(_ context.Context, callerSubject string, in productsvc.CreateInput) (*domain.Product, error) {
	s.lastCreateSubject = callerSubject
	s.lastCreateInput = in
	if callerSubject == "" {
		return nil, domain.ErrUnauthorized
	}
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	return &domain.Product{ID: "created-id", OwnerID: callerSubject, Name: in.Name, PriceCents: in.PriceCents}, nil
}

func (s *stubProductService) Delete(_ context.Context, callerSubject, productID string) error {
	s.lastDeleteSubject = callerSubject
	s.lastDeleteID = productID
	if callerSubject == "" {
		return domain.ErrUnauthorized
	}
	return s.deleteErr
}

type stubOrderService struct {
	created    *domain.Order
	createErr  error
	orders     []domain.Order
	shipErr    error
	lastCreate ordersvc.CreateInput
	shipCalls  int
	lastShipID string
}

func (s *stubOrderService) Create(_ context.Context, in ordersvc.CreateInput) (*domain.Order, error) {
	s.lastCreate = in
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	return &domain.Order{
		ID:         "order-id",
		Items:      in.Items,
		TotalCents: in.TotalCents,
		BuyerName:  in.BuyerName,
		Status:     domain.OrderStatusNew,
	}, nil
}

func (s *stubOrderService) List(_ context.Context) ([]domain.Order, error) {
	return s.orders, nil
}

func (s *stubOrderService) MarkShipped(_ context.Context, id string) error {
	s.shipCalls++
	s.lastShipID = id
	return s.shipErr
}

type stubUserService struct {
	syncErr   error
	syncCalls int
	lastSync  usersvc.SyncInput
}

func (s *stubUserService) Sync(_ context.Context, in usersvc.SyncInput) (*domain.User, error) {
	s.syncCalls++
	s.lastSync = in
	if s.syncErr != nil {
		return nil, s.syncErr
	}
	return &domain.User{ID: "user-id", ExternalID: in.ExternalID}, nil
}

type stubFileStore struct {
	target      *storage.UploadTarget
	generateErr error
}

func (s *stubFileStore) GenerateUploadURL(_ context.Context) (*storage.UploadTarget, error) {
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	if s.target != nil {
		return s.target, nil
	}
	return &storage.UploadTarget{URL: "https://files.example/upload", StorageID: "new-file"}, nil
}

func (s *stubFileStore) ResolveURL(_ context.Context, storageID string) (string, error) {
	return "https://files.example/" + storageID, nil
}

func (s *stubFileStore) Delete(_ context.Context, _ string) error {
	return nil
}

type stubVerifier struct {
	err   error
	calls int
}

func (s *stubVerifier) Verify(_ []byte, _ http.Header) error {
	s.calls++
	return s.err
}

func testDeps(products *stubProductService, orders *stubOrderService, users *stubUserService, verifier WebhookVerifier) Deps {
	if products == nil {
		products = &stubProductService{}
	}
	if orders == nil {
		orders = &stubOrderService{}
	}
	if users == nil {
		users = &stubUserService{}
	}
	return Deps{
		ProductSvc: products,
		OrderSvc:   orders,
		UserSvc:    users,
		Files:      &stubFileStore{},
		Verifier:   verifier,
		AuthSecret: testAuthSecret,
	}
}
