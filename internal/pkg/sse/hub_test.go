package sse

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_PublishToTopics(t *testing.T) {
	hub := NewHub()

	admin, cancelAdmin := hub.Subscribe("admin")
	defer cancelAdmin()
	emp, cancelEmp := hub.Subscribe("employee")
	defer cancelEmp()

	hub.Publish(Event{Name: "leave.updated", Data: 1}, "admin")

	select {
	case e := <-admin:
		assert.Equal(t, "admin", e.Topic)
		assert.Equal(t, "leave.updated", e.Name)
	default:
		t.Fatal("admin subscriber got nothing")
	}

	select {
	case e := <-emp:
		t.Fatalf("employee subscriber got %v", e)
	default:
	}
}

func TestHub_CancelClosesChannel(t *testing.T) {
	hub := NewHub()

	ch, cancel := hub.Subscribe("admin")
	assert.Equal(t, 1, hub.SubscriberCount("admin"))

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.SubscriberCount("admin"))
}

func TestHub_FullSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub()
	_, cancel := hub.Subscribe("admin")
	defer cancel()

	for i := 0; i < hub.buffer+5; i++ {
		hub.Publish(Event{Name: "employee.created", Data: i}, "admin")
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Event{Name: "leave.updated", Data: map[string]int{"employee_id": 1}}))
	assert.Equal(t, "event: leave.updated\ndata: {\"employee_id\":1}\n\n", buf.String())
}
