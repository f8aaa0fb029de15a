package domain

// Message is one outbound email. HTML and ReplyTo are optional.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}
