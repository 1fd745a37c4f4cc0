package realtime

import (
	"net/http"

	"jobhunter/pkg"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades the request once the access token in the "token" query
// parameter is valid. The session receives the activity of the token's user.
func ServeWS(hub *Hub, jwtSecret string, w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	claims, err := pkg.ValidateToken(token, jwtSecret)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		hub.logger.Warn().Err(err).Msg("ws upgrade failed")
		return
	}

	client := NewClient(hub, conn, claims.UserID)
	hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
