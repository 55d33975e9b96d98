package store

// The queue counter starts at 1 for every process and is handed out
// once per placed order. It is not persisted, so numbers repeat across
// restarts; the customer-facing call number is not an order identity.

func (a *App) NextQueueNumber() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.nextQueueNumber()
}

func (a *App) nextQueueNumber() int {
	n := a.queueNumber
	a.queueNumber++
	return n
}

func (a *App) CurrentQueueNumber() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.queueNumber
}
