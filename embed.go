package marchkeep

import "embed"

// EmailFS carries the email templates so binaries ship self-contained.
//
//go:embed templates/emails
var EmailFS embed.FS
