package probe

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mazeserver/devtools/pkg/logging"
)

// Console labels.
const (
	labelOpened   = "### connection opened ###"
	labelAuthSent = "auth message sent"
	labelReceived = "received: "
	labelError    = "error: "
	labelClosed   = "### connection closed ###"
)

// ConsoleHandler prints every event to a writer, either as labelled text
// lines or as one JSON object per event.
type ConsoleHandler struct {
	out    io.Writer
	json   bool
	now    func() time.Time
	logger *slog.Logger
}

// NewConsoleHandler returns a handler writing to w. With jsonOutput set,
// each event is a JSON object on its own line. Failed writes are logged to
// logger, which may be nil.
func NewConsoleHandler(w io.Writer, jsonOutput bool, logger *slog.Logger) *ConsoleHandler {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ConsoleHandler{out: w, json: jsonOutput, now: time.Now, logger: logger}
}

// consoleEvent is the JSON form of an event.
type consoleEvent struct {
	Event     string `json:"event"`
	Data      string `json:"data,omitempty"`
	Code      int    `json:"code,omitempty"`
	Reason    string `json:"reason,omitempty"`
	Timestamp string `json:"timestamp"`
}

func (h *ConsoleHandler) emit(ev consoleEvent, text string) {
	var err error
	if h.json {
		ev.Timestamp = h.now().Format(time.RFC3339)
		err = json.NewEncoder(h.out).Encode(ev)
	} else {
		_, err = fmt.Fprintln(h.out, text)
	}
	if err != nil {
		h.logger.Debug("writing event failed", "event", ev.Event, "error", err)
	}
}

func (h *ConsoleHandler) OnOpen() {
	h.emit(consoleEvent{Event: "open"}, labelOpened)
}

func (h *ConsoleHandler) OnSent(data string) {
	h.emit(consoleEvent{Event: "sent", Data: data}, labelAuthSent)
}

func (h *ConsoleHandler) OnMessage(data string) {
	h.emit(consoleEvent{Event: "message", Data: data}, labelReceived+data)
}

func (h *ConsoleHandler) OnError(err error) {
	h.emit(consoleEvent{Event: "error", Data: err.Error()}, labelError+err.Error())
}

func (h *ConsoleHandler) OnClose(code int, reason string) {
	text := labelClosed
	switch {
	case reason != "":
		text = fmt.Sprintf("%s (code %d: %s)", labelClosed, code, reason)
	case code != 0:
		text = fmt.Sprintf("%s (code %d)", labelClosed, code)
	}
	h.emit(consoleEvent{Event: "close", Code: code, Reason: reason}, text)
}
