package core

import (
	"log"
	"runtime"
)

// Run executes the overlay's main loop against a host. Single logical
// thread: input, update, layout and draw all complete before the surface is
// handed back; the only suspension points live inside the host.
func Run(ov *Overlay, host Host) {
	// GL-backed hosts require the main OS thread.
	runtime.LockOSThread()
	defer host.Shutdown()

	for !ov.ShouldClose() && !host.ShouldClose() {
		host.PollEvents()
		ov.HandleInput(host.Input())
		ov.Frame(host)
	}

	ov.Shutdown()
	log.Println("Overlay exit")
}
