package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReply_Greeting(t *testing.T) {
	service := NewService()

	assert.Equal(t, "Hi! How can I help you today?", service.Reply("hi there"))
	assert.Equal(t, "Hi! How can I help you today?", service.Reply("hello"))
}

func TestReply_CaseAndWhitespaceInsensitive(t *testing.T) {
	service := NewService()

	assert.Equal(t, "Hi! How can I help you today?", service.Reply("  HELLO  "))
	assert.Equal(t, service.Reply("how to book room"), service.Reply("How To Book Room"))
}

func TestReply_CancelBooking(t *testing.T) {
	service := NewService()

	reply := service.Reply("how do I cancel my booking?")
	assert.Equal(t, "Go to your dashboard and click 'Cancel' next to the booked room.", reply)
}

func TestReply_Fallback(t *testing.T) {
	service := NewService()

	assert.Equal(t, fallbackReply, service.Reply("qwertyuiop"))
}

func TestReply_EmptyMessage(t *testing.T) {
	service := NewService()

	assert.Equal(t, fallbackReply, service.Reply(""))
	assert.Equal(t, fallbackReply, service.Reply("   "))
}

// Matching is substring-based, so a short keyword fires inside a longer
// word: "hi" matches inside "this".
func TestReply_SubstringMatching(t *testing.T) {
	service := NewService()

	assert.Equal(t, "Hi! How can I help you today?", service.Reply("this"))
}

// Rules are checked in declaration order; the first matching rule wins
// even when a later rule also matches.
func TestReply_RuleOrderDecidesTies(t *testing.T) {
	service := NewServiceWithRules([]Rule{
		{Keywords: []string{"price"}, Reply: "first"},
		{Keywords: []string{"price", "room"}, Reply: "second"},
	})

	assert.Equal(t, "first", service.Reply("room price?"))
}

func TestReply_CustomRules(t *testing.T) {
	service := NewServiceWithRules([]Rule{
		{Keywords: []string{"ping"}, Reply: "pong"},
	})

	assert.Equal(t, "pong", service.Reply("ping"))
	assert.Equal(t, fallbackReply, service.Reply("hello"))
}
