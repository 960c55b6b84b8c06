// Package probe implements a minimal WebSocket test client for the maze game
// server.
//
// A Client makes exactly one connection attempt. When the handshake
// completes it sends a single JSON authentication frame, then hands every
// inbound frame to a Handler until the connection ends. There is no retry,
// reconnect or backoff.
//
// # Lifecycle
//
// The client moves through three states:
//
//	Connecting --handshake ok--> Open --close/error/cancel--> Closed
//	Connecting --dial failure-----------------------------> Closed
//
// Handler callbacks are dispatched one at a time from the goroutine that
// called Run, in the order events arrive:
//
//   - OnOpen fires once, after the handshake and before the auth frame.
//   - OnMessage fires for every inbound data frame.
//   - OnError fires for transport failures.
//   - OnClose fires exactly once, when the connection terminates.
//
// Cancelling the context passed to Run sends a normal close frame and ends
// the run. It is the only way to stop a healthy connection from this side.
//
// # Usage
//
//	client := probe.NewClient(probe.Config{
//	    URL:  probe.DefaultURL,
//	    Auth: probe.DefaultAuthMessage(),
//	}, probe.NewConsoleHandler(os.Stdout, false, nil))
//
//	err := client.Run(ctx)
package probe
