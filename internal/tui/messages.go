package tui

// refreshViewMsg tells the model to re-read the workflow surfaces. It
// carries no state, so delivery order does not matter.
type refreshViewMsg struct{}

// confirmRequestMsg opens the confirmation overlay. The answer goes to reply.
type confirmRequestMsg struct {
	prompt string
	reply  chan<- bool
}

// redirectMsg ends the main loop and sends the user to path.
type redirectMsg struct {
	path string
}
