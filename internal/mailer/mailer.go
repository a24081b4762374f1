package mailer

import "embed"

const (
	FROM_NAME                = "Suritel CS"
	MAX_RETRY                = 3
	ACCOUNT_CREATED_TEMPLATE = "account_created.tmpl"
)

//go:embed "templates"
var FS embed.FS

type Client interface {
	Send(templateFile, toUsername, toEmail string, data any) (int, error)
}
