package roomwalk

import (
	"github.com/akmonengine/roomwalk/actor"
)

const (
	CONTACT_ENTER EventType = iota
	CONTACT_STAY
	CONTACT_EXIT
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Contact events, emitted when a character's move is blocked by an obstacle
type ContactEnterEvent struct {
	Character *actor.Character
	Obstacle  string
}

func (e ContactEnterEvent) Type() EventType { return CONTACT_ENTER }

type ContactStayEvent struct {
	Character *actor.Character
	Obstacle  string
}

func (e ContactStayEvent) Type() EventType { return CONTACT_STAY }

type ContactExitEvent struct {
	Character *actor.Character
	Obstacle  string
}

func (e ContactExitEvent) Type() EventType { return CONTACT_EXIT }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Obstacle blocking each character, for Enter/Stay/Exit detection
	previousContacts map[*actor.Character]string
	currentContacts  map[*actor.Character]string
}

func NewEvents() Events {
	return Events{
		listeners:        make(map[EventType][]EventListener),
		buffer:           make([]Event, 0, 16),
		previousContacts: make(map[*actor.Character]string),
		currentContacts:  make(map[*actor.Character]string),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordContact is called after a move to record the obstacle that blocked it
func (e *Events) recordContact(character *actor.Character, obstacleID string) {
	e.currentContacts[character] = obstacleID
}

// forget drops every contact of a removed character
func (e *Events) forget(character *actor.Character) {
	delete(e.previousContacts, character)
	delete(e.currentContacts, character)
}

// processContactEvents compares current and previous contacts to detect Enter/Stay/Exit.
// Characters are visited in the given order so events are emitted deterministically.
func (e *Events) processContactEvents(characters []*actor.Character) {
	for _, character := range characters {
		previous, wasBlocked := e.previousContacts[character]
		current, isBlocked := e.currentContacts[character]

		switch {
		case wasBlocked && isBlocked && previous == current:
			e.buffer = append(e.buffer, ContactStayEvent{Character: character, Obstacle: current})
		case isBlocked:
			if wasBlocked {
				e.buffer = append(e.buffer, ContactExitEvent{Character: character, Obstacle: previous})
			}
			e.buffer = append(e.buffer, ContactEnterEvent{Character: character, Obstacle: current})
		case wasBlocked:
			e.buffer = append(e.buffer, ContactExitEvent{Character: character, Obstacle: previous})
		}
	}

	// Swap for next step and clear current
	e.previousContacts, e.currentContacts = e.currentContacts, e.previousContacts
	clear(e.currentContacts)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush(characters []*actor.Character) {
	e.processContactEvents(characters)

	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
