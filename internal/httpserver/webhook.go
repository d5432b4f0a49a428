package httpserver

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	usersvc "marketstall/internal/service/user"
	"github.com/gin-gonic/gin"
)

type clerkEvent struct {
	Type string `json:"type"`
	Data struct {
		ID        string `json:"id"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		ImageURL  string `json:"image_url"`
	} `json:"data"`
}

// clerkWebhookHandler receives identity-provider events. The svix signature
// is checked before anything else; failures get a bare 400. Recognized
// user.created/user.updated events upsert the local user record, all other
// event types are acknowledged and ignored.
func clerkWebhookHandler(logger *log.Logger, verifier WebhookVerifier, users userService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if verifier == nil {
			c.Status(http.StatusBadRequest)
			return
		}

		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		if err := verifier.Verify(payload, c.Request.Header); err != nil {
			logger.Printf("webhook: signature verification failed: %v", err)
			c.Status(http.StatusBadRequest)
			return
		}

		var event clerkEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		switch event.Type {
		case "user.created", "user.updated":
			_, err := users.Sync(c.Request.Context(), usersvc.SyncInput{
				ExternalID: event.Data.ID,
				FirstName:  event.Data.FirstName,
				LastName:   event.Data.LastName,
				ImageURL:   event.Data.ImageURL,
			})
			if err != nil {
				logger.Printf("webhook: upsert user external_id=%s error=%v", event.Data.ID, err)
				c.Status(http.StatusInternalServerError)
				return
			}
		}

		c.Status(http.StatusOK)
	}
}
