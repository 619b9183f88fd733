package chatbot

import (
	"strings"

	"github.com/rs/zerolog/log"

	"coursehub/utils"
)

// maxHistoryTurns bounds the conversation context sent to the remote
// backend.
const maxHistoryTurns = 10

// Bot answers questions about the program catalog. With a configured
// remote backend it holds a short conversation history; without one
// (or on any remote failure) it answers from the keyword classifier.
type Bot struct {
	client  *utils.ChatClient
	history []utils.ChatMessage
	kb      KnowledgeBase
}

// New builds a Bot. client may be nil or disabled; the bot then runs
// purely on the classifier.
func New(client *utils.ChatClient) *Bot {
	return &Bot{
		client: client,
		kb:     DefaultKnowledgeBase(),
	}
}

// RemoteEnabled reports whether a generative backend is configured.
func (b *Bot) RemoteEnabled() bool {
	return b.client.Enabled()
}

// Respond produces the assistant's answer for one user utterance.
// Remote failures are logged and never surfaced; the classifier
// answers instead.
func (b *Bot) Respond(input string) string {
	if b.RemoteEnabled() {
		response, err := b.remoteResponse(input)
		if err == nil {
			return response
		}
		log.Warn().Err(err).Msg("Remote assistant unavailable, using rule-based response")
	}
	return b.classify(input)
}

func (b *Bot) remoteResponse(input string) (string, error) {
	b.history = append(b.history, utils.ChatMessage{Role: "user", Content: input})
	if len(b.history) > maxHistoryTurns {
		b.history = b.history[len(b.history)-maxHistoryTurns:]
	}

	messages := make([]utils.ChatMessage, 0, len(b.history)+1)
	messages = append(messages, utils.ChatMessage{Role: "system", Content: b.systemPrompt()})
	messages = append(messages, b.history...)

	response, err := b.client.Complete(messages, 300, 0.7)
	if err != nil {
		return "", err
	}
	response = strings.TrimSpace(response)
	b.history = append(b.history, utils.ChatMessage{Role: "assistant", Content: response})
	return response, nil
}

func (b *Bot) systemPrompt() string {
	return `You are an assistant for a leadership development academy.

KNOWLEDGE BASE:
` + b.kb.JSON() + `

GUIDELINES:
1. Answer questions about the academy's programs, mentors, duration, certificates, and formats
2. If asked about topics outside the academy, politely redirect to leadership programs
3. For program inquiries, provide specific details from the knowledge base
4. Encourage users to take action (enroll, contact, visit the website)
5. If unsure about specific details, acknowledge limitations and suggest contacting ` + b.kb.Contact + `

Keep responses under 200 words and end with a helpful follow-up question.`
}

// Keyword sets checked in fixed priority order by the classifier.
var (
	greetingWords      = []string{"hello", "hi", "hey", "good morning", "good afternoon"}
	programWords       = []string{"program", "course", "offer", "available"}
	durationWords      = []string{"duration", "long", "time", "months"}
	formatWords        = []string{"online", "offline", "format", "where", "location"}
	certificationWords = []string{"certificate", "certification", "credential"}
	mentorWords        = []string{"mentor", "coach", "instructor", "teacher"}
	farewellWords      = []string{"bye", "goodbye", "thanks", "thank you"}
)

// classify maps an utterance to the first matching canned template.
func (b *Bot) classify(input string) string {
	lower := strings.ToLower(input)

	switch {
	case containsAny(lower, greetingWords):
		return "Hello! I'm the course assistant. I'm here to help you learn about our leadership development programs. What would you like to know?"

	case containsAny(lower, programWords):
		var sb strings.Builder
		sb.WriteString("We offer several leadership programs:\n\n")
		for _, p := range b.kb.Programs {
			sb.WriteString(p.Name + "\n")
			sb.WriteString("   Duration: " + p.Duration + "\n")
			sb.WriteString("   Format: " + p.Format + "\n\n")
		}
		sb.WriteString("Which program interests you most?")
		return sb.String()

	case containsAny(lower, durationWords):
		return "Our program durations vary:\n" +
			"- Executive Leadership: 6 months\n" +
			"- Women in Leadership: 3 months\n" +
			"- Workshop Series: 2 months\n" +
			"- Mentorship: Ongoing\n\n" +
			"Would you like details about any specific program?"

	case containsAny(lower, formatWords):
		return "We offer flexible learning formats:\n" +
			"- Online: " + b.kb.Locations["online"] + "\n" +
			"- Offline: " + b.kb.Locations["offline"] + "\n" +
			"- Hybrid: " + b.kb.Locations["hybrid"] + "\n\n" +
			"Most programs offer multiple format options!"

	case containsAny(lower, certificationWords):
		return "Yes! All our programs include:\n" +
			"- Industry-recognized certifications\n" +
			"- Digital certificates with verification\n" +
			"- LinkedIn-ready credentials\n\n" +
			"Certificates boost your professional profile!"

	case containsAny(lower, mentorWords):
		return "Our expert mentors include:\n- " +
			strings.Join(b.kb.Mentors, "\n- ") +
			"\n\nYou'll learn from the best in the industry!"

	case containsAny(lower, farewellWords):
		return "Thank you for your interest! Ready to start your leadership journey? " +
			"Contact us at " + b.kb.Contact + " or visit " + b.kb.Website + ". Have a great day!"

	default:
		return "I'd love to help you learn about our leadership programs! I can tell you about:\n\n" +
			"- Our available programs and courses\n" +
			"- Program durations and schedules\n" +
			"- Online, offline, and hybrid formats\n" +
			"- Certification details\n" +
			"- Our expert mentors and coaches\n\n" +
			"What would you like to know more about?"
	}
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
