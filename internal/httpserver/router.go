package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"

	"marketstall/internal/domain"
	ordersvc "marketstall/internal/service/order"
	productsvc "marketstall/internal/service/product"
	usersvc "marketstall/internal/service/user"
	"marketstall/internal/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type productService interface {
	ListForOwner(ctx context.Context, callerSubject string) ([]productsvc.View, error)
	ListPublic(ctx context.Context) ([]productsvc.View, error)
	Get(ctx context.Context, id string) (*productsvc.View, error)
	Create(ctx context.Context, callerSubject string, in productsvc.CreateInput) (*domain.Product, error)
	Delete(ctx context.Context, callerSubject, productID string) error
}

type orderService interface {
	Create(ctx context.Context, in ordersvc.CreateInput) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	MarkShipped(ctx context.Context, id string) error
}

type userService interface {
	Sync(ctx context.Context, in usersvc.SyncInput) (*domain.User, error)
}

// WebhookVerifier checks the svix signature headers on an inbound
// identity-provider event. *svix.Webhook satisfies it.
type WebhookVerifier interface {
	Verify(payload []byte, headers http.Header) error
}

// Deps carries the collaborators the router needs.
type Deps struct {
	ProductSvc productService
	OrderSvc   orderService
	UserSvc    userService
	Files      storage.FileStore
	Verifier   WebhookVerifier
	AuthSecret string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if deps.ProductSvc == nil || deps.OrderSvc == nil || deps.UserSvc == nil {
		return nil, errors.New("missing service dependencies")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())
	router.Use(identityMiddleware(deps.AuthSecret))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	// Identity-provider webhook.
	router.POST("/clerk", clerkWebhookHandler(logger, deps.Verifier, deps.UserSvc))

	// Public storefront.
	router.GET("/products", listPublicProductsHandler(deps.ProductSvc))
	router.GET("/products/:productID", getProductHandler(deps.ProductSvc))

	// Seller dashboard.
	router.GET("/dashboard/products", listOwnerProductsHandler(deps.ProductSvc))
	router.POST("/products", createProductHandler(deps.ProductSvc))
	router.DELETE("/products/:productID", deleteProductHandler(deps.ProductSvc))
	router.POST("/uploads", generateUploadURLHandler(deps.Files))
	router.GET("/orders", listOrdersHandler(deps.OrderSvc))
	router.POST("/orders/:orderID/ship", shipOrderHandler(deps.OrderSvc))

	// Buyer checkout.
	router.POST("/orders", createOrderHandler(deps.OrderSvc))

	carts := newSessionCarts()
	router.GET("/cart", getCartHandler(carts))
	router.POST("/cart/items", addCartItemHandler(carts))
	router.DELETE("/cart/items/:productID", removeCartItemHandler(carts))
	router.POST("/cart/checkout", checkoutHandler(carts, deps.OrderSvc))

	return router, nil
}

func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrAccessDenied):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrCleanupFailed):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"message": err.Error()})
}
