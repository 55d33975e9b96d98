package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"go-campus-canteen/models"
	"go-campus-canteen/store"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	clients = make(map[*websocket.Conn]bool)
	mu      sync.Mutex
)

type wsMessage struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// HandleWebSocket registers a client for order events. The staff
// dashboard listens here for newOrder and orderStatus.
func HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("websocket upgrade failed:", err)
			return
		}
		defer conn.Close()

		mu.Lock()
		clients[conn] = true
		mu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				mu.Lock()
				delete(clients, conn)
				mu.Unlock()
				break
			}
		}
	}
}

func notifyClients(event string, payload interface{}) {
	mu.Lock()
	defer mu.Unlock()

	data, err := json.Marshal(wsMessage{Event: event, Payload: payload})
	if err != nil {
		log.Println("error marshaling ws message:", err)
		return
	}
	for client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			client.Close()
			delete(clients, client)
		}
	}
}

// GetNotifications is the static listing behind the notifications
// screen; nothing in the app writes notifications yet.
func GetNotifications(app *store.App) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := c.GetString("uid")
		now := time.Now()
		c.JSON(http.StatusOK, []models.Notification{
			{
				ID:        "notif-1",
				UserID:    uid,
				Title:     "Welcome to Nomnom",
				Message:   "Order from the canteen without queueing at the counter.",
				IsRead:    false,
				CreatedAt: now.Add(-48 * time.Hour),
			},
			{
				ID:        "notif-2",
				UserID:    uid,
				Title:     "Promo",
				Message:   "10% off every order above Rp30.000, applied automatically.",
				IsRead:    true,
				CreatedAt: now.Add(-72 * time.Hour),
			},
		})
	}
}
