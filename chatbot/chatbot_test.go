package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRespondWithoutRemoteBackend(t *testing.T) {
	bot := New(nil)
	assert.False(t, bot.RemoteEnabled())

	// Nil client falls straight through to the classifier.
	reply := bot.Respond("hello there")
	assert.Contains(t, reply, "course assistant")
}

func TestClassifyGreeting(t *testing.T) {
	bot := New(nil)
	for _, input := range []string{"Hello", "hi!", "Hey, anyone here?", "good morning"} {
		assert.Contains(t, bot.Respond(input), "What would you like to know?", "input: %s", input)
	}
}

func TestClassifyPrograms(t *testing.T) {
	bot := New(nil)
	reply := bot.Respond("What programs do you offer?")
	assert.Contains(t, reply, "Executive Leadership Program")
	assert.Contains(t, reply, "Women in Leadership Certification")
	assert.Contains(t, reply, "Which program interests you most?")
}

func TestClassifyDuration(t *testing.T) {
	bot := New(nil)
	reply := bot.Respond("how many months does it take")
	assert.Contains(t, reply, "6 months")
	assert.Contains(t, reply, "Ongoing")
}

func TestClassifyFormat(t *testing.T) {
	bot := New(nil)
	reply := bot.Respond("is it online or in person")
	assert.Contains(t, reply, "Live virtual sessions")
	assert.Contains(t, reply, "multiple format options")
}

func TestClassifyCertification(t *testing.T) {
	bot := New(nil)
	reply := bot.Respond("do I get a certificate at the end")
	assert.Contains(t, reply, "Industry-recognized certifications")
}

func TestClassifyMentors(t *testing.T) {
	bot := New(nil)
	reply := bot.Respond("who are the mentors")
	assert.Contains(t, reply, "ICF-accredited professional coaches")
}

func TestClassifyFarewell(t *testing.T) {
	bot := New(nil)
	reply := bot.Respond("thanks, goodbye")
	assert.Contains(t, reply, "Have a great day!")
}

func TestClassifyDefaultMenu(t *testing.T) {
	bot := New(nil)
	reply := bot.Respond("qwerty")
	assert.Contains(t, reply, "What would you like to know more about?")
}

func TestClassifyPriorityOrder(t *testing.T) {
	bot := New(nil)

	// An utterance hitting several keyword sets resolves to the first
	// one in priority order.
	reply := bot.Respond("hello, tell me about program duration and mentors")
	assert.Contains(t, reply, "course assistant")

	reply = bot.Respond("tell me about program duration and mentors")
	assert.Contains(t, reply, "Which program interests you most?")
}

func TestKnowledgeBaseJSON(t *testing.T) {
	kb := DefaultKnowledgeBase()
	encoded := kb.JSON()
	assert.Contains(t, encoded, "Executive Leadership Program")
	assert.Contains(t, encoded, kb.Contact)
}
