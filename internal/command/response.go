package command

import "strings"

// Response is a rendered chat reply. Transports with rich formatting use
// Title, Color and Footer; plain transports use Text.
type Response struct {
	Title  string
	Body   string
	Footer string
	Color  int

	// Frames are cosmetic reel lines shown one after another before Body
	Frames []string

	IsError bool
}

// Text renders the response for plain-text transports
func (r Response) Text() string {
	var sb strings.Builder
	if r.Title != "" && !r.IsError {
		sb.WriteString(r.Title)
		sb.WriteString("\n")
	}
	sb.WriteString(stripMarkdown(r.Body))
	if r.Footer != "" {
		sb.WriteString("\n\n")
		sb.WriteString(r.Footer)
	}
	return sb.String()
}

var markdownStripper = strings.NewReplacer("**", "", "`", "")

func stripMarkdown(s string) string {
	return markdownStripper.Replace(s)
}

func errorResponse(msg string) Response {
	return Response{Title: TitleError, Body: msg, Color: ColorError, IsError: true}
}
