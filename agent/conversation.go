package agent

import "github.com/inference-gateway/groq-mcp-client/providers"

// Conversation is the transcript of completed queries. It is a value: With
// returns a new Conversation and never modifies the receiver.
type Conversation struct {
	messages []providers.Message
}

// Messages returns a copy of the transcript
func (c Conversation) Messages() []providers.Message {
	out := make([]providers.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

func (c Conversation) Len() int {
	return len(c.messages)
}

// With appends a user query and the assistant reply to it
func (c Conversation) With(query, reply string) Conversation {
	messages := make([]providers.Message, 0, len(c.messages)+2)
	messages = append(messages, c.messages...)
	messages = append(messages,
		providers.NewUserMessage(query),
		providers.NewAssistantMessage(reply, nil),
	)
	return Conversation{messages: messages}
}
