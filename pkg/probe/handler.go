package probe

// Handler receives connection events. Calls are never concurrent.
type Handler interface {
	// OnOpen is called once the handshake has completed.
	OnOpen()

	// OnMessage is called with the payload of each inbound data frame.
	OnMessage(data string)

	// OnError is called when the transport reports a failure.
	OnError(err error)

	// OnClose is called exactly once when the connection terminates.
	// Code is the peer's close code, or 1006 when the connection ended
	// without a close frame.
	OnClose(code int, reason string)
}

// SendObserver is implemented by handlers that want to see outbound frames.
type SendObserver interface {
	OnSent(data string)
}

// HandlerFuncs adapts plain functions to Handler. Nil fields are skipped.
type HandlerFuncs struct {
	Open    func()
	Message func(data string)
	Error   func(err error)
	Close   func(code int, reason string)
	Sent    func(data string)
}

func (h HandlerFuncs) OnOpen() {
	if h.Open != nil {
		h.Open()
	}
}

func (h HandlerFuncs) OnMessage(data string) {
	if h.Message != nil {
		h.Message(data)
	}
}

func (h HandlerFuncs) OnError(err error) {
	if h.Error != nil {
		h.Error(err)
	}
}

func (h HandlerFuncs) OnClose(code int, reason string) {
	if h.Close != nil {
		h.Close(code, reason)
	}
}

func (h HandlerFuncs) OnSent(data string) {
	if h.Sent != nil {
		h.Sent(data)
	}
}
