package websocket

const (
	MessageTypeStatus = "status"
	MessageTypeClosed = "closed"
)

const (
	CloseReasonComplete = "complete"
	CloseReasonNotFound = "session_not_found"
	CloseReasonTimeout  = "timeout"
	CloseReasonShutdown = "shutdown"
)

// Message is the envelope pushed to status stream subscribers.
type Message struct {
	Type   string      `json:"type"`
	Reason string      `json:"reason,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

func StatusMessage(data interface{}) *Message {
	return &Message{Type: MessageTypeStatus, Data: data}
}

func ClosedMessage(reason string) *Message {
	return &Message{Type: MessageTypeClosed, Reason: reason}
}
