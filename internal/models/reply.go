package models

// ResponseType controls who sees a slash command reply.
type ResponseType string

const (
	// ResponseTypeEphemeral is visible only to the user who ran the command
	ResponseTypeEphemeral ResponseType = "ephemeral"
	// ResponseTypeInChannel is visible to everyone in the channel
	ResponseTypeInChannel ResponseType = "in_channel"
)

// SlashReply is the immediate JSON acknowledgment returned for a slash command
type SlashReply struct {
	ResponseType ResponseType `json:"response_type"`
	Text         string       `json:"text"`
}

// InChannel builds a reply visible to the whole channel
func InChannel(text string) SlashReply {
	return SlashReply{ResponseType: ResponseTypeInChannel, Text: text}
}

// Ephemeral builds a reply visible only to the invoking user
func Ephemeral(text string) SlashReply {
	return SlashReply{ResponseType: ResponseTypeEphemeral, Text: text}
}
