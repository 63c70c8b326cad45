package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendWithSendgrid delivers a rendered message through the Sendgrid API.
func (s *Service) sendWithSendgrid(data EmailData, htmlContent, textContent string) error {
	msg := mail.NewSingleEmail(
		mail.NewEmail(data.FromName, data.From),
		data.Subject,
		mail.NewEmail("", data.To),
		textContent,
		htmlContent,
	)

	resp, err := s.sendgridClient.Send(msg)
	if err != nil {
		return fmt.Errorf("sending email via Sendgrid: %w", err)
	}
	// Sendgrid acknowledges accepted mail with 202.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("Sendgrid rejected message: status %d, body %s", resp.StatusCode, resp.Body)
	}
	return nil
}
