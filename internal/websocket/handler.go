package websocket

import (
	"github.com/gofiber/websocket/v2"
)

// ServeWs attaches a connection to the hub under sessionID and blocks until
// the peer disconnects.
func ServeWs(hub *Hub, c *websocket.Conn, sessionID string, onMessage MessageHandler) {
	client := &Client{Hub: hub, Conn: c, SessionID: sessionID, Send: make(chan []byte, 256), onMessage: onMessage}
	if !hub.attach(client) {
		c.Close()
		return
	}

	go client.writePump()
	client.readPump()
}
