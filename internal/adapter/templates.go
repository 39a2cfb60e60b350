package adapter

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/MKhiriev/vip-motors/models"
)

type renderedMessage struct {
	Subject string
	HTML    string
	Text    string
}

type templateData struct {
	Name         string
	Link         string
	DashboardURL string
}

type messageTemplate struct {
	subject string
	html    *htmltemplate.Template
	text    *texttemplate.Template
}

type templates struct {
	frontendURL string
	byKind      map[models.NotificationKind]messageTemplate
}

const layoutHeader = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
<div style="background: #1e3c72; color: white; padding: 30px; text-align: center;">
<h1 style="margin: 0; font-size: 28px;">VIP MOTORS</h1>
<p style="margin: 10px 0 0 0; opacity: 0.9;">{{.Tagline}}</p>
</div>
<div style="padding: 30px; background: #f8f9fa;">`

const layoutFooter = `</div></div>`

func layout(tagline, body string) string {
	return strings.Replace(layoutHeader, "{{.Tagline}}", tagline, 1) + body + layoutFooter
}

var messageSources = map[models.NotificationKind]struct {
	subject string
	html    string
	text    string
}{
	models.NotificationEmailVerification: {
		subject: "Welcome to VIP Motors - Verify Your Email",
		html: layout("Hypercars Showcase", `<h2>Welcome to VIP Motors, {{.Name}}!</h2>
<p>Thank you for joining the elite hypercar community. To complete your registration, please verify your email address.</p>
<p style="text-align: center;"><a href="{{.Link}}">Verify Email Address</a></p>
<p style="font-size: 14px;">If the button doesn't work, copy and paste this link into your browser:<br>{{.Link}}</p>
<p style="color: #999; font-size: 12px;">This link will expire in 24 hours. If you didn't create an account with VIP Motors, please ignore this email.</p>`),
		text: `Welcome to VIP Motors, {{.Name}}!

Verify your email address by opening this link:
{{.Link}}

This link will expire in 24 hours. If you didn't create an account with VIP Motors, please ignore this email.
`,
	},
	models.NotificationPasswordReset: {
		subject: "VIP Motors - Password Reset Request",
		html: layout("Password Reset", `<h2>Hello {{.Name}},</h2>
<p>We received a request to reset your password for your VIP Motors account. Click the link below to create a new password.</p>
<p style="text-align: center;"><a href="{{.Link}}">Reset Password</a></p>
<p style="font-size: 14px;">If the button doesn't work, copy and paste this link into your browser:<br>{{.Link}}</p>
<p><strong>Security Notice:</strong> This link will expire in 10 minutes and can only be used once. If you didn't request a password reset, please ignore this email and your password will remain unchanged.</p>`),
		text: `Hello {{.Name}},

Reset your VIP Motors password by opening this link:
{{.Link}}

This link will expire in 10 minutes and can only be used once. If you didn't request a password reset, please ignore this email.
`,
	},
	models.NotificationWelcome: {
		subject: "Welcome to VIP Motors - Your Account is Ready!",
		html: layout("Welcome to the Elite", `<h2>Welcome to VIP Motors, {{.Name}}!</h2>
<p>Your account has been verified and you now have access to our exclusive hypercar collection.</p>
<ul>
<li>Browse our exclusive hypercar collection</li>
<li>Add your favorite cars to your wishlist</li>
<li>Compare specifications and performance</li>
</ul>
<p style="text-align: center;"><a href="{{.DashboardURL}}">Explore Collection</a></p>`),
		text: `Welcome to VIP Motors, {{.Name}}!

Your account has been verified. Explore the collection at {{.DashboardURL}}
`,
	},
}

// newTemplates parses every message template. The sources are constants, so
// a parse failure is a programming error.
func newTemplates(frontendURL string) *templates {
	t := &templates{
		frontendURL: strings.TrimRight(frontendURL, "/"),
		byKind:      make(map[models.NotificationKind]messageTemplate, len(messageSources)),
	}

	for kind, source := range messageSources {
		t.byKind[kind] = messageTemplate{
			subject: source.subject,
			html:    htmltemplate.Must(htmltemplate.New(string(kind)).Parse(source.html)),
			text:    texttemplate.Must(texttemplate.New(string(kind)).Parse(source.text)),
		}
	}

	return t
}

func (t *templates) render(notification models.Notification) (renderedMessage, error) {
	tmpl, ok := t.byKind[notification.Kind]
	if !ok {
		return renderedMessage{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, notification.Kind)
	}

	data := templateData{
		Name:         notification.Name,
		Link:         notification.Link,
		DashboardURL: t.frontendURL + "/dashboard",
	}

	var html, text bytes.Buffer
	if err := tmpl.html.Execute(&html, data); err != nil {
		return renderedMessage{}, fmt.Errorf("error rendering %s html: %w", notification.Kind, err)
	}
	if err := tmpl.text.Execute(&text, data); err != nil {
		return renderedMessage{}, fmt.Errorf("error rendering %s text: %w", notification.Kind, err)
	}

	subject := tmpl.subject
	if notification.Subject != "" {
		subject = notification.Subject
	}

	return renderedMessage{Subject: subject, HTML: html.String(), Text: text.String()}, nil
}
