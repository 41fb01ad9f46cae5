package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lic-events/vbs-api/internal/domain"
)

type sentMessage struct {
	phoneNumber string
	message     string
}

type captureSender struct {
	ch   chan sentMessage
	fail bool
}

func (s *captureSender) Send(_ context.Context, phoneNumber, message string) error {
	s.ch <- sentMessage{phoneNumber: phoneNumber, message: message}
	if s.fail {
		return errors.New("provider down")
	}

	return nil
}

func awaitMessage(t *testing.T, ch chan sentMessage) sentMessage {
	t.Helper()

	select {
	case got := <-ch:
		return got
	case <-time.After(2 * time.Second):
		t.Fatal("no SMS was dispatched")
		return sentMessage{}
	}
}

var testParticipant = domain.Participant{
	ID:               7,
	FirstName:        "Ama",
	LastName:         "Mensah",
	PrimaryContactNo: "0244000000",
}

func TestNotifier_NotifyCheckIn(t *testing.T) {
	sender := &captureSender{ch: make(chan sentMessage, 1)}
	notifier := NewNotifier(sender, "020 8888 8888")

	notifier.NotifyCheckIn(testParticipant, domain.Day2, 54321)

	got := awaitMessage(t, sender.ch)
	assert.Equal(t, "0244000000", got.phoneNumber)
	assert.Contains(t, got.message, "Ama Mensah")
	assert.Contains(t, got.message, "day 2")
	assert.Contains(t, got.message, "54321")
}

func TestNotifier_NotifyPickup(t *testing.T) {
	sender := &captureSender{ch: make(chan sentMessage, 1)}
	notifier := NewNotifier(sender, "020 8888 8888")

	notifier.NotifyPickup(testParticipant, domain.Day5, "Kofi Mensah")

	got := awaitMessage(t, sender.ch)
	assert.Equal(t, "0244000000", got.phoneNumber)
	assert.Contains(t, got.message, "picked up")
	assert.Contains(t, got.message, "Kofi Mensah")
	assert.Contains(t, got.message, "020 8888 8888")
}

func TestNotifier_SendFailureIsSwallowed(t *testing.T) {
	sender := &captureSender{ch: make(chan sentMessage, 1), fail: true}
	notifier := NewNotifier(sender, "020 8888 8888")

	// Must not panic or propagate; the workflow has already returned.
	notifier.NotifyCheckIn(testParticipant, domain.Day1, 12345)
	awaitMessage(t, sender.ch)
}
