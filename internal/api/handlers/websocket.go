package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	ws "github.com/conference-planner/backend/internal/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The planner runs behind the user's own reverse proxy
		return true
	},
}

// WebSocketUpgrade returns a handler that upgrades HTTP connections to WebSocket.
func WebSocketUpgrade(hub *ws.Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("WebSocket upgrade error: %v", err)
			return
		}

		client := ws.NewClient(hub)
		hub.Register(client)

		go writePump(conn, client)
		go readPump(conn, client, hub)
	}
}

// writePump pumps messages from the hub to the WebSocket connection.
func writePump(conn *websocket.Conn, client *ws.Client) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send():
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				// Hub closed the channel
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump pumps messages from the WebSocket connection to the hub.
func readPump(conn *websocket.Conn, client *ws.Client, hub *ws.Hub) {
	defer func() {
		hub.Unregister(client)
		conn.Close()
	}()

	conn.SetReadLimit(65536)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket read error: %v", err)
			}
			break
		}

		handleClientMessage(client, message)
	}
}

// handleClientMessage processes incoming client commands.
func handleClientMessage(client *ws.Client, message []byte) {
	var msg ws.Message
	if err := json.Unmarshal(message, &msg); err != nil {
		reply(client, ws.NewMessage(ws.TypeError, ws.ErrorPayload{
			Code:    "bad_message",
			Message: "Message is not valid JSON",
		}))
		return
	}

	switch msg.Type {
	case ws.TypePing:
		reply(client, ws.NewMessage(ws.TypePong, nil))
	case ws.TypeSubscribe, ws.TypeUnsubscribe:
		// All clients receive all events; acknowledge for protocol parity
		reply(client, ws.NewMessage(ws.TypeSubscribeAck, nil))
	default:
		reply(client, ws.NewMessage(ws.TypeError, ws.ErrorPayload{
			Code:         "unknown_type",
			Message:      "Unsupported message type",
			OriginalType: string(msg.Type),
		}))
	}
}

func reply(client *ws.Client, msg ws.Message) {
	data, err := msg.JSON()
	if err != nil {
		log.Printf("Error encoding WebSocket reply: %v", err)
		return
	}
	select {
	case client.Send() <- data:
	default:
	}
}
