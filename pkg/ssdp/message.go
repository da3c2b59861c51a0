package ssdp

// MessageType distinguishes the three kinds of SSDP message on the wire.
type MessageType int

const (
	// MessageNotify is an unsolicited NOTIFY announcement.
	MessageNotify MessageType = iota
	// MessageSearch is an M-SEARCH discovery request.
	MessageSearch
	// MessageResponse is a 200 OK response to a search.
	MessageResponse
)

// String implements fmt.Stringer for log messages.
func (t MessageType) String() string {
	switch t {
	case MessageNotify:
		return "NOTIFY"
	case MessageSearch:
		return "M-SEARCH"
	case MessageResponse:
		return "RESPONSE"
	default:
		return "UNKNOWN"
	}
}

// Message pairs an SSDP message type with its header bag. Messages are
// constructed empty, mutated by header setters, and consumed by send and
// parse operations; they hold no other runtime state.
type Message struct {
	Type    MessageType
	Headers *Headers
}

// NewMessage constructs an empty message of the given type.
func NewMessage(t MessageType) *Message {
	return &Message{Type: t, Headers: NewHeaders()}
}

// GetRaw implements HeaderRef by delegating to the underlying header bag.
func (m *Message) GetRaw(name string) ([][]byte, bool) {
	return m.Headers.GetRaw(name)
}

// SetRaw implements HeaderMut by delegating to the underlying header bag.
func (m *Message) SetRaw(name string, lines [][]byte) {
	m.Headers.SetRaw(name, lines)
}

// Clone returns a deep copy of the message, used so that sending never
// mutates or shares state with the caller's Message.
func (m *Message) Clone() *Message {
	return &Message{Type: m.Type, Headers: m.Headers.Clone()}
}
