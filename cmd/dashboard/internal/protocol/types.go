package protocol

import "encoding/json"

const (
	ActionSubscribe      = "subscribe"
	ActionUnsubscribe    = "unsubscribe"
	ActionUnsubscribeAll = "unsubscribe_all"
	ActionNavigate       = "navigate"
)

// Feed topics a client can subscribe to.
const (
	TopicMetrics = "metrics"
	TopicView    = "view"
)

var ValidTopics = map[string]bool{TopicMetrics: true, TopicView: true}

type WSRequest struct {
	Action  string         `json:"action"`
	Payload RequestPayload `json:"payload"`
	ID      string         `json:"id,omitempty"`
}

type RequestPayload struct {
	Topics []string `json:"topics,omitempty"`
	View   string   `json:"view,omitempty"` // navigate only
}

type WSResponse struct {
	Type    string      `json:"type"`             // "ack", "error", or a topic name
	ID      string      `json:"id,omitempty"`     // Matches request ID
	Status  string      `json:"status,omitempty"` // "success", "error"
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Envelope wraps a raw feed payload as a topic frame without re-decoding it.
func Envelope(topic, payload string) []byte {
	b, err := json.Marshal(WSResponse{Type: topic, Data: json.RawMessage(payload)})
	if err != nil {
		// payload was not valid JSON; ship it as a string instead
		b, _ = json.Marshal(WSResponse{Type: topic, Data: payload})
	}
	return b
}
