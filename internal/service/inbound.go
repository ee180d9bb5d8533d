package service

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/shenikar/rural_health_triage/internal/models"
)

var selfIntroduction = regexp.MustCompile(`\b(?i:my name is)\s+([A-Z][A-Za-z'-]*(?:[ \t]+[A-Z][A-Za-z'-]*){0,2})`)

// inboundMessage - проверенное и нормализованное входящее письмо
type inboundMessage struct {
	Email   string
	Name    string
	Subject string
	Body    string
}

// normalizeInbound отклоняет письмо без отправителя, темы или текста до разбора
func normalizeInbound(in models.InboundEmail) (inboundMessage, error) {
	msg := inboundMessage{
		Subject: strings.TrimSpace(in.Subject),
		Body:    strings.TrimSpace(in.TextBody),
		Name:    strings.TrimSpace(in.FromName),
	}
	if msg.Body == "" && strings.TrimSpace(in.HTMLBody) != "" {
		msg.Body = htmlToText(in.HTMLBody)
	}

	from := strings.TrimSpace(in.From)
	if from != "" {
		if addr, err := mail.ParseAddress(from); err == nil {
			msg.Email = addr.Address
			if msg.Name == "" {
				msg.Name = strings.TrimSpace(addr.Name)
			}
		} else {
			return inboundMessage{}, fmt.Errorf("%w: malformed sender address %q", ErrInvalidInbound, from)
		}
	}

	var missing []string
	if msg.Email == "" {
		missing = append(missing, "sender")
	}
	if msg.Subject == "" {
		missing = append(missing, "subject")
	}
	if msg.Body == "" {
		missing = append(missing, "body")
	}
	if len(missing) > 0 {
		return inboundMessage{}, fmt.Errorf("%w: missing %s", ErrInvalidInbound, strings.Join(missing, ", "))
	}

	if msg.Name == "" {
		if m := selfIntroduction.FindStringSubmatch(msg.Body); m != nil {
			msg.Name = strings.TrimSpace(m[1])
		}
	}
	return msg, nil
}

// htmlToText извлекает видимый текст из HTML-тела письма
func htmlToText(raw string) string {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "head":
				return
			case "br", "p", "div", "li", "tr":
				b.WriteString("\n")
			}
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	lines := strings.Split(b.String(), "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
