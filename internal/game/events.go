package game

// Handler receives a game event and the arguments it was published
// with.
type Handler func(g *Game, args []any)

// EventHandler subscribes a handler to an event. A Once handler is
// removed after its first call. The same EventHandler registered
// twice for one event is only called once per notification.
type EventHandler struct {
	Fn   Handler
	Once bool
}

// AddEventHandler subscribes the handler to an event. Every event
// also publishes a "notify" event carrying the event name, so a
// handler subscribed to "notify" observes all events.
func (g *Game) AddEventHandler(event string, handler *EventHandler) {
	if handler == nil || handler.Fn == nil {
		return
	}

	handlers, ok := g.handlers[event]

	if !ok {
		handlers = make(map[*EventHandler]struct{})
		g.handlers[event] = handlers
	}

	handlers[handler] = struct{}{}
}

// RemoveEventHandler unsubscribes the handler. Removing a handler
// that is not subscribed does nothing.
func (g *Game) RemoveEventHandler(event string, handler *EventHandler) {
	delete(g.handlers[event], handler)
}

// Notify publishes an event to its subscribers, then publishes the
// matching "notify" event. Handlers added during dispatch are not
// called for the event being dispatched.
func (g *Game) Notify(event string, args ...any) {
	handlers := make([]*EventHandler, 0, len(g.handlers[event]))

	for handler := range g.handlers[event] {
		handlers = append(handlers, handler)
	}

	for _, handler := range handlers {
		handler.Fn(g, args)

		if handler.Once {
			g.RemoveEventHandler(event, handler)
		}
	}

	if event != "notify" {
		g.Notify("notify", event)
	}
}
