// internal/email/mailer/mailer.go
package mailer

import (
	"context"
	"fmt"

	"github.com/marchkeep/marchkeep/internal/email"
)

const fromName = "MarchKeep"

// Sender renders and dispatches the application's transactional emails.
type Sender struct {
	svc *email.Service
}

func NewSender(svc *email.Service) *Sender {
	return &Sender{svc: svc}
}

// SchoolWelcomeData contains data for the school welcome email template
type SchoolWelcomeData struct {
	SchoolName    string
	OnboardingURL string
}

// SendSchoolWelcome greets a new school's director with their onboarding link
func (s *Sender) SendSchoolWelcome(ctx context.Context, to, schoolName, onboardingURL string) error {
	return s.svc.SendEmail(email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      fmt.Sprintf("Welcome to MarchKeep, %s!", schoolName),
		TemplateName: "school_welcome",
		TemplateData: SchoolWelcomeData{
			SchoolName:    schoolName,
			OnboardingURL: onboardingURL,
		},
	})
}

// LinkDecisionData contains data for the link decision email template
type LinkDecisionData struct {
	StudentName string
	Approved    bool
}

// SendLinkDecision notifies a parent of a director's link decision
func (s *Sender) SendLinkDecision(ctx context.Context, to, studentName string, approved bool) error {
	subject := fmt.Sprintf("Your link to %s was approved", studentName)
	if !approved {
		subject = fmt.Sprintf("Your link to %s was not approved", studentName)
	}
	return s.svc.SendEmail(email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      subject,
		TemplateName: "link_decision",
		TemplateData: LinkDecisionData{
			StudentName: studentName,
			Approved:    approved,
		},
	})
}

// GuestReceiptData contains data for the guest receipt email template
type GuestReceiptData struct {
	StudentName string
	Category    string
	Amount      string
}

// SendGuestReceipt confirms a resolved guest payment to the payer
func (s *Sender) SendGuestReceipt(ctx context.Context, to, studentName, category string, amount int64) error {
	return s.svc.SendEmail(email.EmailData{
		To:           to,
		FromName:     fromName,
		Subject:      "Your payment receipt",
		TemplateName: "guest_receipt",
		TemplateData: GuestReceiptData{
			StudentName: studentName,
			Category:    category,
			Amount:      formatCents(amount),
		},
	})
}

func formatCents(amount int64) string {
	return fmt.Sprintf("$%d.%02d", amount/100, amount%100)
}
