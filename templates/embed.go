package templates

import "embed"

// EmailFS holds the HTML mail templates rendered by internal/email.
//
//go:embed email/*.html
var EmailFS embed.FS
