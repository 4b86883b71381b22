// internal/contact/service.go
package contact

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/coregymclub/core-gym-public/internal/email"
	"github.com/coregymclub/core-gym-public/internal/forms"
)

// Fields is the validation configuration for the public contact form.
var Fields = []forms.Field{
	{Name: "name", Label: "Namn", Required: true, Rules: []forms.Rule{
		{Type: forms.RuleMaxLength, Length: 100},
	}},
	{Name: "email", Label: "E-post", Required: true, Rules: []forms.Rule{
		{Type: forms.RuleEmail},
	}},
	{Name: "phone", Label: "Telefon", Rules: []forms.Rule{
		{Type: forms.RulePhone},
	}},
	{Name: "subject", Label: "Ämne", Rules: []forms.Rule{
		{Type: forms.RuleMaxLength, Length: 200},
	}},
	{Name: "message", Label: "Meddelande", Required: true, Rules: []forms.Rule{
		{Type: forms.RuleMinLength, Length: 10},
		{Type: forms.RuleMaxLength, Length: 5000},
	}},
}

// Service validates, persists, and relays contact submissions. The
// notification email is best effort; a submission is accepted once it is
// stored.
type Service struct {
	store     *Store
	sender    email.Sender
	recipient string
	logger    zerolog.Logger
}

func NewService(store *Store, sender email.Sender, recipient string, logger zerolog.Logger) *Service {
	return &Service{
		store:     store,
		sender:    sender,
		recipient: recipient,
		logger:    logger,
	}
}

// Submit validates the form values and persists the submission. It
// returns field errors when validation fails, or the stored submission.
func (s *Service) Submit(ctx context.Context, values map[string]string) (*Submission, map[string]string, error) {
	fieldErrors, ok := forms.Validate(values, Fields)
	if !ok {
		return nil, fieldErrors, nil
	}

	submission := &Submission{
		Name:     values["name"],
		Email:    values["email"],
		Phone:    values["phone"],
		Subject:  values["subject"],
		Message:  values["message"],
		ClubSlug: values["club"],
	}
	if err := s.store.Insert(ctx, submission); err != nil {
		return nil, nil, fmt.Errorf("store submission: %w", err)
	}

	notification := email.BuildContactNotification(email.ContactDetails{
		Name:     submission.Name,
		Email:    submission.Email,
		Phone:    submission.Phone,
		Subject:  submission.Subject,
		Message:  submission.Message,
		ClubSlug: submission.ClubSlug,
	})
	email.SendContactNotification(s.sender, s.recipient, notification, &s.logger)

	return submission, nil, nil
}
