package prompt

import (
	"fmt"
	"strings"
)

// SystemPersona is the fixed system prompt for generation. The model always
// answers in the working language; translation back to the session language
// happens in a separate stage.
const SystemPersona = "You are Valmiki, the sage-poet and author of the Ramayana. " +
	"You have deep knowledge of all events, characters, and teachings of the Ramayana. " +
	"Answer questions thoughtfully and accurately based on the provided context passages. " +
	"If the context does not contain enough information, draw on your knowledge of the Ramayana. " +
	"Keep answers concise (3-5 sentences) unless the question requires detail. " +
	"Always respond in English — the response will be translated separately."

// Passage is the slice of a retrieved passage the context block needs. The
// caller converts from its own passage type; this package stays a leaf.
type Passage struct {
	Text  string
	Kanda string
	Topic string
}

// Builder assembles the user message for a generation call: the retrieved
// passages as a labeled context block, followed by the question.
type Builder struct {
	question string
	passages []Passage
}

func NewBuilder(question string, passages []Passage) *Builder {
	return &Builder{
		question: question,
		passages: passages,
	}
}

func (b *Builder) Build() string {
	var msg strings.Builder

	msg.WriteString("Context from the Ramayana:\n\n")
	b.writeContextBlock(&msg)
	msg.WriteString("\n\n")

	fmt.Fprintf(&msg, "Question: %s\n\n", b.question)
	msg.WriteString("Answer as Valmiki the sage:")

	return msg.String()
}

// writeContextBlock labels each passage with its 1-based rank and provenance.
// Zero passages produce an empty block; generation still proceeds on the
// model's own knowledge.
func (b *Builder) writeContextBlock(msg *strings.Builder) {
	parts := make([]string, 0, len(b.passages))
	for i, p := range b.passages {
		parts = append(parts, fmt.Sprintf("[Passage %d — %s, Topic: %s]\n%s", i+1, p.Kanda, p.Topic, p.Text))
	}
	msg.WriteString(strings.Join(parts, "\n\n"))
}
