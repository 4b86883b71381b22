package email

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const notificationTimeout = 5 * time.Second

// ContactNotification is the staff-facing email built from a contact
// form submission.
type ContactNotification struct {
	Subject string
	Body    string
}

// ContactDetails carries one contact form submission.
type ContactDetails struct {
	Name     string
	Email    string
	Phone    string
	Subject  string
	Message  string
	ClubSlug string
}

// BuildContactNotification formats the staff notification email.
func BuildContactNotification(details ContactDetails) ContactNotification {
	subject := "Nytt meddelande från webbplatsen"
	if details.Subject != "" {
		subject = fmt.Sprintf("Nytt meddelande: %s", details.Subject)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Namn: %s\n", details.Name)
	fmt.Fprintf(&b, "E-post: %s\n", details.Email)
	if details.Phone != "" {
		fmt.Fprintf(&b, "Telefon: %s\n", details.Phone)
	}
	if details.ClubSlug != "" {
		fmt.Fprintf(&b, "Klubb: %s\n", details.ClubSlug)
	}
	fmt.Fprintf(&b, "\n%s\n", details.Message)

	return ContactNotification{Subject: subject, Body: b.String()}
}

// SendContactNotification delivers the notification asynchronously. The
// form submission has already been persisted, so delivery failures are
// logged and otherwise swallowed.
func SendContactNotification(sender Sender, recipient string, notification ContactNotification, logger *zerolog.Logger) {
	if sender == nil || recipient == "" {
		return
	}
	if notification.Subject == "" || notification.Body == "" {
		return
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
		defer cancel()
		if err := sender.Send(sendCtx, recipient, notification.Subject, notification.Body); err != nil {
			if logger != nil {
				logger.Error().Err(err).Str("recipient", recipient).Msg("Failed to send contact notification")
			}
		}
	}()
}
