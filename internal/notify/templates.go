package notify

import (
	htmltemplate "html/template"
	texttemplate "text/template"
)

// templateData is the payload rendered into every notification template.
type templateData struct {
	Name       string
	Email      string
	Subject    string
	Message    string
	ReceivedAt string
	WebsiteURL string
	IPAddress  string
	Location   string
}

const adminHTMLSrc = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="border-bottom: 2px solid #007bff; padding-bottom: 10px;">New Contact Form Submission</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
  <p><strong>Subject:</strong> {{.Subject}}</p>
  {{if .IPAddress}}<p><strong>From:</strong> {{.IPAddress}}{{if .Location}} ({{.Location}}){{end}}</p>{{end}}
  <h3>Message</h3>
  <div style="background-color: #f8f9fa; padding: 15px; border-left: 4px solid #007bff;">
    <p style="white-space: pre-wrap;">{{.Message}}</p>
  </div>
  <p style="color: #666; font-size: 12px; border-top: 1px solid #eee; padding-top: 10px;">
    Received at {{.ReceivedAt}} via the contact form at {{.WebsiteURL}}
  </p>
</div>
`

const adminTextSrc = `New Contact Form Submission

Name: {{.Name}}
Email: {{.Email}}
Subject: {{.Subject}}
{{if .IPAddress}}From: {{.IPAddress}}{{if .Location}} ({{.Location}}){{end}}
{{end}}
Message:
{{.Message}}

---
Received at {{.ReceivedAt}} via the contact form at {{.WebsiteURL}}
`

const confirmHTMLSrc = `<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="border-bottom: 2px solid #007bff; padding-bottom: 10px;">Thank you for reaching out, {{.Name}}!</h2>
  <p>We received your message and will get back to you within 24 hours.</p>
  <h3>Your message</h3>
  <p><strong>Subject:</strong> {{.Subject}}</p>
  <div style="background-color: #f8f9fa; padding: 15px; border-left: 4px solid #007bff;">
    <p style="white-space: pre-wrap;">{{.Message}}</p>
  </div>
  <p style="color: #666; font-size: 12px; border-top: 1px solid #eee; padding-top: 10px;">
    Sent {{.ReceivedAt}} · {{.WebsiteURL}}
  </p>
</div>
`

const confirmTextSrc = `Thank you for reaching out, {{.Name}}!

We received your message and will get back to you within 24 hours.

Your message:
Subject: {{.Subject}}

{{.Message}}

---
Sent {{.ReceivedAt}} - {{.WebsiteURL}}
`

var (
	adminHTML   = htmltemplate.Must(htmltemplate.New("adminHTML").Parse(adminHTMLSrc))
	adminText   = texttemplate.Must(texttemplate.New("adminText").Parse(adminTextSrc))
	confirmHTML = htmltemplate.Must(htmltemplate.New("confirmHTML").Parse(confirmHTMLSrc))
	confirmText = texttemplate.Must(texttemplate.New("confirmText").Parse(confirmTextSrc))
)
