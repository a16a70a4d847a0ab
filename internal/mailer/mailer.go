// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mailer dispatches the two contact-form notifications (owner
// notice and submitter auto-reply) through an SMTP transport.
package mailer

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"

	"github.com/wneessen/go-mail"

	"folio/internal/contact"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options configures the SMTP transport and message addressing.
type Options struct {
	Host        string
	Port        int
	User        string
	Pass        string
	From        string // sender address for both messages
	To          string // owner notification recipient
	CalendlyURL string // optional scheduling link for the auto-reply
}

// Mailer renders and sends the contact notifications.
type Mailer struct {
	client    *mail.Client
	from      string
	to        string
	calendly  string
	templates *template.Template
}

// New creates a Mailer connected per send. Port 465 uses an
// upfront-encrypted connection; any other port upgrades with STARTTLS.
func New(opts Options) (*Mailer, error) {
	tpls, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse mail templates: %w", err)
	}

	clientOpts := []mail.Option{
		mail.WithPort(opts.Port),
	}
	if useImplicitTLS(opts.Port) {
		clientOpts = append(clientOpts, mail.WithSSL())
	} else {
		clientOpts = append(clientOpts, mail.WithTLSPolicy(mail.TLSMandatory))
	}
	if opts.User != "" {
		clientOpts = append(clientOpts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(opts.User),
			mail.WithPassword(opts.Pass),
		)
	}

	client, err := mail.NewClient(opts.Host, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	from := opts.From
	if from == "" {
		from = opts.User
	}

	return &Mailer{
		client:    client,
		from:      from,
		to:        opts.To,
		calendly:  opts.CalendlyURL,
		templates: tpls,
	}, nil
}

// Dispatch sends the owner notice and the auto-reply. The two sends are
// independent: a failure of one does not stop the other, and all failures
// are joined into the returned error.
func (m *Mailer) Dispatch(ctx context.Context, sub contact.Submission) error {
	owner, err := m.ownerNotice(sub)
	if err != nil {
		return err
	}
	reply, err := m.contactReply(sub)
	if err != nil {
		return err
	}

	var errs []error
	if err := m.client.DialAndSendWithContext(ctx, owner); err != nil {
		errs = append(errs, fmt.Errorf("send owner notice: %w", err))
	}
	if err := m.client.DialAndSendWithContext(ctx, reply); err != nil {
		errs = append(errs, fmt.Errorf("send auto-reply: %w", err))
	}
	return errors.Join(errs...)
}

// ownerNotice is the notification to the site owner, with Reply-To set to
// the submitter so answering the mail answers the person.
func (m *Mailer) ownerNotice(sub contact.Submission) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("owner notice from: %w", err)
	}
	if err := msg.To(m.to); err != nil {
		return nil, fmt.Errorf("owner notice to: %w", err)
	}
	if err := msg.ReplyTo(sub.Email); err != nil {
		return nil, fmt.Errorf("owner notice reply-to: %w", err)
	}
	msg.Subject("New contact: " + sub.Name)

	tpl := m.templates.Lookup("owner-notice.html")
	if err := msg.SetBodyHTMLTemplate(tpl, ownerNoticeData{
		Name:    sub.Name,
		Email:   sub.Email,
		Message: sub.Message,
	}); err != nil {
		return nil, fmt.Errorf("owner notice body: %w", err)
	}
	return msg, nil
}

// contactReply is the auto-reply to the submitter.
func (m *Mailer) contactReply(sub contact.Submission) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("auto-reply from: %w", err)
	}
	if err := msg.To(sub.Email); err != nil {
		return nil, fmt.Errorf("auto-reply to: %w", err)
	}
	msg.Subject("Thanks! Let's connect")

	tpl := m.templates.Lookup("contact-reply.html")
	if err := msg.SetBodyHTMLTemplate(tpl, contactReplyData{
		Name:     sub.Name,
		Calendly: m.calendly,
	}); err != nil {
		return nil, fmt.Errorf("auto-reply body: %w", err)
	}
	return msg, nil
}

type ownerNoticeData struct {
	Name    string
	Email   string
	Message string
}

type contactReplyData struct {
	Name     string
	Calendly string
}

// useImplicitTLS reports whether the port implies an upfront-encrypted
// connection (465) rather than a STARTTLS upgrade (587, 2525, ...).
func useImplicitTLS(port int) bool {
	return port == 465
}
