package httpserver

import (
	"net/http"

	productsvc "marketstall/internal/service/product"
	"marketstall/internal/storage"
	"github.com/gin-gonic/gin"
)

type createProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	PriceCents  int64   `json:"priceCents" binding:"min=0"`
	SKU         string  `json:"sku"`
	StorageID   *string `json:"storageId"`
}

func listOwnerProductsHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		views, err := svc.ListForOwner(c.Request.Context(), callerSubject(c))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, views)
	}
}

func listPublicProductsHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		views, err := svc.ListPublic(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		if views == nil {
			views = []productsvc.View{}
		}
		c.JSON(http.StatusOK, views)
	}
}

func getProductHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := svc.Get(c.Request.Context(), c.Param("productID"))
		if err != nil {
			respondError(c, err)
			return
		}
		if view == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

func createProductHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		created, err := svc.Create(c.Request.Context(), callerSubject(c), productsvc.CreateInput{
			Name:        req.Name,
			Description: req.Description,
			PriceCents:  req.PriceCents,
			SKU:         req.SKU,
			StorageID:   req.StorageID,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func deleteProductHandler(svc productService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), callerSubject(c), c.Param("productID")); err != nil {
			respondError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// generateUploadURLHandler mints a short-lived direct-upload URL. The client
// PUTs the file there and then passes the returned storage id into product
// create. No file type or size validation happens here.
func generateUploadURLHandler(files storage.FileStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if callerSubject(c) == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}
		target, err := files.GenerateUploadURL(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, target)
	}
}
