package controller

import (
	"log/slog"
	"net/http"

	"CivicConnectAPI/internal/helper"
	"CivicConnectAPI/internal/middleware"
	"CivicConnectAPI/internal/model"
	"CivicConnectAPI/internal/websocket"

	ws "github.com/gorilla/websocket"
)

type WebSocketController struct {
	hub *websocket.Hub
}

func NewWebSocketController(hub *websocket.Hub) *WebSocketController {
	return &WebSocketController{
		hub: hub,
	}
}

var upgrader = ws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// ServeWS upgrades the connection and subscribes the client to the
// live report event stream.
func (c *WebSocketController) ServeWS(w http.ResponseWriter, r *http.Request) {
	userContext, ok := r.Context().Value(middleware.UserContextKey).(*model.UserDTO)
	if !ok {
		helper.WriteError(w, helper.NewUnauthorizedError(""))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade websocket", "error", err)
		return
	}

	client := websocket.NewClient(c.hub, conn, userContext.ID)
	c.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()

	slog.Info("WebSocket client connected", "userID", userContext.ID)
}
