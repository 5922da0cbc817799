package events

import "testing"

func TestBus_PublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus(4)
	defer bus.Close()

	ch1, unsub1 := bus.Subscribe()
	ch2, unsub2 := bus.Subscribe()
	defer unsub1()
	defer unsub2()

	bus.Publish(Event{Type: EventNotification, Payload: "hello"})

	for i, ch := range []<-chan Event{ch1, ch2} {
		select {
		case event := <-ch:
			if event.Type != EventNotification {
				t.Errorf("Subscriber %d: expected %s, got %s", i, EventNotification, event.Type)
			}
		default:
			t.Fatalf("Subscriber %d did not receive the event", i)
		}
	}
}

func TestBus_SlowSubscriberDropsEvents(t *testing.T) {
	bus := NewBus(1)
	defer bus.Close()

	ch, unsub := bus.Subscribe()
	defer unsub()

	bus.Publish(Event{Type: EventVesselUpdate})
	bus.Publish(Event{Type: EventPlanUpdate}) // buffer full, dropped

	received := 0
	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}
		break
	}
	if received != 1 {
		t.Fatalf("Expected 1 buffered event, got %d", received)
	}
}

func TestBus_UnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus(4)
	defer bus.Close()

	ch, unsub := bus.Subscribe()
	unsub()

	if _, ok := <-ch; ok {
		t.Fatalf("Expected a closed channel after unsubscribe")
	}

	// Publishing after unsubscribe must not panic.
	bus.Publish(Event{Type: EventCargoUpdate})
}

func TestBus_CloseClosesAllSubscribers(t *testing.T) {
	bus := NewBus(4)

	ch, _ := bus.Subscribe()
	bus.Close()

	if _, ok := <-ch; ok {
		t.Fatalf("Expected a closed channel after bus close")
	}

	// Subscribing after close yields an already-closed channel.
	late, _ := bus.Subscribe()
	if _, ok := <-late; ok {
		t.Fatalf("Expected a closed channel for late subscribers")
	}
}
