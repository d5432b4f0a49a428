package httpserver

import (
	"net/http"
	"sync"

	"marketstall/internal/cart"
	"marketstall/internal/domain"
	ordersvc "marketstall/internal/service/order"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const cartCookieName = "cart_session"

// sessionCarts holds one in-memory cart per browsing session, keyed by a
// session cookie. Carts do not survive a restart.
type sessionCarts struct {
	mu sync.Mutex
	m  map[string]*cart.Store
}

func newSessionCarts() *sessionCarts {
	return &sessionCarts{m: make(map[string]*cart.Store)}
}

func (s *sessionCarts) forRequest(c *gin.Context) *cart.Store {
	id, err := c.Cookie(cartCookieName)
	if err != nil || id == "" {
		id = uuid.NewString()
		c.SetCookie(cartCookieName, id, 0, "/", "", false, true)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	store, ok := s.m[id]
	if !ok {
		store = cart.New()
		s.m[id] = store
	}
	return store
}

type cartResponse struct {
	Items      []cart.Item `json:"items"`
	Count      int         `json:"count"`
	TotalCents int64       `json:"totalCents"`
}

func cartView(store *cart.Store) cartResponse {
	return cartResponse{
		Items:      store.Items(),
		Count:      store.Count(),
		TotalCents: store.TotalCents(),
	}
}

type addCartItemRequest struct {
	ProductID  string  `json:"productId" binding:"required"`
	Name       string  `json:"name"`
	PriceCents int64   `json:"priceCents"`
	ImageURL   *string `json:"imageUrl"`
}

type checkoutRequest struct {
	BuyerName string `json:"buyerName" binding:"required"`
}

func getCartHandler(carts *sessionCarts) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView(carts.forRequest(c)))
	}
}

func addCartItemHandler(carts *sessionCarts) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		store := carts.forRequest(c)
		store.Add(cart.Item{
			ProductID:  req.ProductID,
			Name:       req.Name,
			PriceCents: req.PriceCents,
			ImageURL:   req.ImageURL,
		})
		c.JSON(http.StatusOK, cartView(store))
	}
}

func removeCartItemHandler(carts *sessionCarts) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := carts.forRequest(c)
		store.Remove(c.Param("productID"))
		c.JSON(http.StatusOK, cartView(store))
	}
}

// checkoutHandler places an order from the session cart and clears the cart
// on success. The order total is the cart-derived sum.
func checkoutHandler(carts *sessionCarts, svc orderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		store := carts.forRequest(c)
		lines := store.Items()
		if len(lines) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"message": "cart is empty"})
			return
		}

		items := make([]domain.OrderItem, 0, len(lines))
		for _, line := range lines {
			items = append(items, domain.OrderItem{
				ProductID:  line.ProductID,
				Name:       line.Name,
				PriceCents: line.PriceCents,
			})
		}
		created, err := svc.Create(c.Request.Context(), ordersvc.CreateInput{
			Items:      items,
			TotalCents: store.TotalCents(),
			BuyerName:  req.BuyerName,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		store.Clear()
		c.JSON(http.StatusCreated, created)
	}
}
