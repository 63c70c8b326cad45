// internal/email/service.go
package email

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/sendgrid/sendgrid-go"

	"github.com/marchkeep/marchkeep"
	"github.com/marchkeep/marchkeep/internal/config"
)

var templateFS = marchkeep.EmailFS

// Provider identifies supported email providers
type Provider string

const (
	ProviderSMTP     Provider = "smtp"
	ProviderSendgrid Provider = "sendgrid"

	templateRoot = "templates/emails"
)

// templateNames is the set of transactional emails the service knows how to
// send. Each name maps to templates/emails/<name>/{html,plaintext}.tmpl.
var templateNames = []string{
	"school_welcome",
	"guest_receipt",
	"link_decision",
}

// EmailData describes one outgoing message.
type EmailData struct {
	To           string
	From         string
	FromName     string
	Subject      string
	TemplateName string
	TemplateData interface{}
}

type templatePair struct {
	html      *template.Template
	plaintext *template.Template
}

// Service renders transactional emails and dispatches them through the
// configured provider.
type Service struct {
	config         *config.Config
	provider       Provider
	sendgridClient *sendgrid.Client
	templates      map[string]templatePair
}

func NewEmailService(config *config.Config, provider Provider) (*Service, error) {
	s := &Service{
		config:    config,
		provider:  provider,
		templates: make(map[string]templatePair, len(templateNames)),
	}

	if provider == ProviderSendgrid {
		s.sendgridClient = sendgrid.NewSendClient(config.Sendgrid.APIKey)
	}

	for _, name := range templateNames {
		dir := templateRoot + "/" + name
		html, err := template.ParseFS(templateFS, dir+"/html.tmpl")
		if err != nil {
			return nil, fmt.Errorf("parsing %s html template: %w", name, err)
		}
		plaintext, err := template.ParseFS(templateFS, dir+"/plaintext.tmpl")
		if err != nil {
			return nil, fmt.Errorf("parsing %s plaintext template: %w", name, err)
		}
		s.templates[name] = templatePair{html: html, plaintext: plaintext}
	}

	return s, nil
}

// SendEmail renders the named template in both formats and hands the result
// to the provider.
func (s *Service) SendEmail(data EmailData) error {
	htmlContent, textContent, err := s.render(data.TemplateName, data.TemplateData)
	if err != nil {
		return err
	}

	switch s.provider {
	case ProviderSendgrid:
		if data.From == "" {
			data.From = s.config.Sendgrid.From
		}
		return s.sendWithSendgrid(data, htmlContent, textContent)
	case ProviderSMTP:
		if data.From == "" {
			return fmt.Errorf("missing sender email address (From)")
		}
		return s.sendWithSMTP(data, htmlContent, textContent)
	default:
		return fmt.Errorf("unsupported email provider: %s", s.provider)
	}
}

func (s *Service) render(name string, data interface{}) (string, string, error) {
	pair, ok := s.templates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}

	var htmlBuf, textBuf bytes.Buffer
	if err := pair.html.Execute(&htmlBuf, data); err != nil {
		return "", "", fmt.Errorf("rendering %s html: %w", name, err)
	}
	if err := pair.plaintext.Execute(&textBuf, data); err != nil {
		return "", "", fmt.Errorf("rendering %s plaintext: %w", name, err)
	}
	return htmlBuf.String(), textBuf.String(), nil
}
