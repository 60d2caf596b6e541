package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_LatestWins(t *testing.T) {
	var h Hub[int]
	ch, unsubscribe := h.Subscribe()
	defer unsubscribe()

	h.Publish(1)
	h.Publish(2)
	h.Publish(3)

	assert.Equal(t, 3, <-ch)
	select {
	case v := <-ch:
		t.Fatalf("unexpected %d", v)
	default:
	}
}

func TestHub_FanOut(t *testing.T) {
	var h Hub[string]
	a, ua := h.Subscribe()
	b, ub := h.Subscribe()
	defer ua()
	defer ub()
	assert.Equal(t, 2, h.Len())

	h.Publish("x")
	assert.Equal(t, "x", <-a)
	assert.Equal(t, "x", <-b)
}

func TestHub_UnsubscribeIsIdempotent(t *testing.T) {
	var h Hub[int]
	ch, unsubscribe := h.Subscribe()
	unsubscribe()
	unsubscribe()
	assert.Equal(t, 0, h.Len())

	h.Publish(1)
	_, open := <-ch
	assert.False(t, open)
}

func TestHub_Close(t *testing.T) {
	var h Hub[int]
	ch, unsubscribe := h.Subscribe()
	h.Close()
	h.Close()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)

	late, _ := h.Subscribe()
	_, open = <-late
	assert.False(t, open)

	h.Publish(1)
}
