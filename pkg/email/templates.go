package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"sportloods-backend/internal/domain"
)

// ContactEmailData holds the data for both contact form emails
type ContactEmailData struct {
	SiteName    string
	SenderName  string
	SenderEmail string
	Phone       string
	Subject     string
	Message     string
}

// ownerTemplate is the HTML notification sent to the studio
const ownerTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Nieuw bericht van het contactformulier</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <h2>Nieuw bericht van het contactformulier</h2>
    <p><strong>Naam:</strong> {{.SenderName}}</p>
    <p><strong>E-mail:</strong> {{.SenderEmail}}</p>
    {{- if .Phone}}
    <p><strong>Telefoon:</strong> {{.Phone}}</p>
    {{- end}}
    {{- if .Subject}}
    <p><strong>Onderwerp:</strong> {{.Subject}}</p>
    {{- end}}
    <p><strong>Bericht:</strong></p>
    <p>{{lines .Message}}</p>
</body>
</html>`

const ownerTextTemplate = `Nieuw bericht van het contactformulier

Naam: {{.SenderName}}
E-mail: {{.SenderEmail}}
{{- if .Phone}}
Telefoon: {{.Phone}}
{{- end}}
{{- if .Subject}}
Onderwerp: {{.Subject}}
{{- end}}

Bericht:
{{.Message}}
`

// autoReplyTemplate acknowledges the visitor and quotes their message
const autoReplyTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Bedankt voor je bericht</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <h2>Bedankt voor je bericht!</h2>
    <p>Hoi {{.SenderName}},</p>
    <p>We hebben je bericht ontvangen en nemen zo spoedig mogelijk contact met je op.</p>
    <p>Met sportieve groet,<br>
    Team {{.SiteName}}</p>
    <hr>
    <p style="color: #666; font-size: 12px;">
        <strong>Je bericht:</strong><br>
        {{lines .Message}}
    </p>
</body>
</html>`

const autoReplyTextTemplate = `Bedankt voor je bericht!

Hoi {{.SenderName}},

We hebben je bericht ontvangen en nemen zo spoedig mogelijk contact met je op.

Met sportieve groet,
Team {{.SiteName}}

--
Je bericht:
{{.Message}}
`

var (
	htmlFuncs = template.FuncMap{
		// lines escapes s and keeps its line breaks
		"lines": func(s string) template.HTML {
			escaped := template.HTMLEscapeString(s)
			escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
			return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
		},
	}

	ownerHTML     = template.Must(template.New("owner").Funcs(htmlFuncs).Parse(ownerTemplate))
	ownerText     = texttemplate.Must(texttemplate.New("owner_text").Parse(ownerTextTemplate))
	autoReplyHTML = template.Must(template.New("auto_reply").Funcs(htmlFuncs).Parse(autoReplyTemplate))
	autoReplyText = texttemplate.Must(texttemplate.New("auto_reply_text").Parse(autoReplyTextTemplate))
)

// OwnerNotification builds the email telling the studio a visitor wrote in
func OwnerNotification(from, to string, data ContactEmailData) (domain.OutboundEmail, error) {
	htmlBody, textBody, err := render(ownerHTML, ownerText, data)
	if err != nil {
		return domain.OutboundEmail{}, fmt.Errorf("render owner notification: %w", err)
	}
	return domain.OutboundEmail{
		From:     from,
		To:       to,
		ReplyTo:  data.SenderEmail,
		Subject:  fmt.Sprintf("Nieuw contactformulier bericht van %s", data.SenderName),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

// AutoReply builds the acknowledgement sent back to the visitor's own address
func AutoReply(from string, data ContactEmailData) (domain.OutboundEmail, error) {
	htmlBody, textBody, err := render(autoReplyHTML, autoReplyText, data)
	if err != nil {
		return domain.OutboundEmail{}, fmt.Errorf("render auto-reply: %w", err)
	}
	return domain.OutboundEmail{
		From:     from,
		To:       data.SenderEmail,
		Subject:  fmt.Sprintf("Bedankt voor je bericht - %s", data.SiteName),
		HTMLBody: htmlBody,
		TextBody: textBody,
	}, nil
}

func render(h *template.Template, t *texttemplate.Template, data ContactEmailData) (string, string, error) {
	var htmlBuf, textBuf bytes.Buffer
	if err := h.Execute(&htmlBuf, data); err != nil {
		return "", "", err
	}
	if err := t.Execute(&textBuf, data); err != nil {
		return "", "", err
	}
	return htmlBuf.String(), textBuf.String(), nil
}
