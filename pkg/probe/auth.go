package probe

import "encoding/json"

// Defaults reproduce the fixed values the game server's test client uses.
const (
	DefaultURL        = "ws://localhost:8081/"
	DefaultPlayerID   = "test_client_123"
	DefaultPlayerName = "TestClient"

	authMessageType = "auth"
)

// AuthMessage is the one frame the probe ever sends.
type AuthMessage struct {
	Type       string `json:"type"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Token      string `json:"token"`
}

// NewAuthMessage returns an auth message for the given player.
func NewAuthMessage(playerID, playerName, token string) AuthMessage {
	return AuthMessage{
		Type:       authMessageType,
		PlayerID:   playerID,
		PlayerName: playerName,
		Token:      token,
	}
}

// DefaultAuthMessage returns the auth message for the built-in test player.
func DefaultAuthMessage() AuthMessage {
	return NewAuthMessage(DefaultPlayerID, DefaultPlayerName, "")
}

// Encode returns the single-line JSON form sent on the wire.
func (m AuthMessage) Encode() ([]byte, error) {
	if m.Type == "" {
		m.Type = authMessageType
	}
	return json.Marshal(m)
}
