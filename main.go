package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	netx "sketchboard/internal/net"
	"sketchboard/internal/state"
	"sketchboard/internal/ui"
)

const (
	CustomURLScheme = "sketchboard://"
	Port            = 8888
)

func main() {
	args := os.Args
	switch {
	case len(args) > 1 && strings.HasPrefix(args[1], CustomURLScheme):
		runClient(args[1])
	case len(args) > 1 && args[1] == "discover":
		runDiscover()
	default:
		runHost()
	}
}

func runHost() {
	log.Println("Starting as HOST")
	boardState := state.NewBoardState()
	board := ui.NewBoardWidget(boardState)
	board.SetLocalClientID("host") // The host identifies itself with a special ID

	hub := netx.NewHub()

	// When the host draws, erases or clears.
	board.OnOp = func(op state.Op) {
		data, _ := json.Marshal(op)
		hub.Broadcast(data, nil)
	}

	// Ops arriving from clients: apply locally, relay to the OTHER clients.
	hub.OnMessage = func(data []byte, sender any) {
		var op state.Op
		if err := json.Unmarshal(data, &op); err != nil {
			log.Printf("[HOST] Dropping malformed op: %v", err)
			return
		}
		log.Printf("[HOST] Received '%s' from site %s", op.Type, op.Site)
		board.ApplyRemote(op)
		hub.Broadcast(data, sender)
	}

	// Late joiners get the current document replayed.
	hub.OnConnect = func(sender any) {
		for _, op := range boardState.Ops() {
			data, _ := json.Marshal(op)
			hub.SendTo(sender, data)
		}
	}

	go func() {
		if err := hub.ListenAndServe(Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	mdnsServer, err := netx.Advertise(Port)
	if err != nil {
		log.Printf("mDNS advertise failed (peers must use the link): %v", err)
	} else {
		defer mdnsServer.Shutdown()
	}

	hostIP, err := netx.OutgoingIP()
	if err != nil {
		hostIP = "127.0.0.1"
	}
	shareLink := fmt.Sprintf("%s%s:%d", CustomURLScheme, hostIP, Port)
	ui.RunApp(shareLink, board)
}

func runClient(link string) {
	log.Println("Starting as CLIENT")
	board := ui.NewBoardWidget(state.NewBoardState())
	go connectToHost(link, board)
	ui.RunApp("", board)
}

// runDiscover browses mDNS for a host on the local network and joins the
// first one found.
func runDiscover() {
	found := make(chan string, 1)
	go func() {
		if err := netx.Browse(func(addr string) {
			select {
			case found <- addr:
			default:
			}
		}); err != nil {
			log.Printf("mDNS browse failed: %v", err)
		}
	}()

	select {
	case addr := <-found:
		log.Printf("Discovered host at %s", addr)
		runClient(CustomURLScheme + addr)
	case <-time.After(5 * time.Second):
		log.Println("No host found on the local network, starting as HOST instead")
		runHost()
	}
}

func connectToHost(link string, board *ui.BoardWidget) {
	address := strings.TrimPrefix(link, CustomURLScheme)
	address = strings.TrimSuffix(address, "/")
	time.Sleep(500 * time.Millisecond) // Give UI time to launch

	client, err := netx.Dial(address)
	if err != nil {
		board.SetStatus(fmt.Sprintf("Connection failed: %v", err))
		return
	}

	// A client's unique ID is its full network address (IP:Port).
	board.SetLocalClientID(client.LocalAddr())
	board.SetStatus("Connected to host as " + client.LocalAddr())
	log.Println("Client connected successfully as", client.LocalAddr())

	// When the client draws, erases or clears, the op goes to the host.
	board.OnOp = func(op state.Op) {
		data, _ := json.Marshal(op)
		if err := client.Send(data); err != nil {
			log.Printf("Failed to send op: %v", err)
		}
	}

	// Listen for ops relayed by the host. Our own ops come back too when the
	// host replays history; Apply drops duplicates by object ID.
	err = client.ReadLoop(func(data []byte) {
		var op state.Op
		if err := json.Unmarshal(data, &op); err != nil {
			log.Printf("Dropping malformed op: %v", err)
			return
		}
		board.ApplyRemote(op)
	})
	board.SetStatus(fmt.Sprintf("Disconnected from host: %v", err))
}
