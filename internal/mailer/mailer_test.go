package mailer

import (
	"log"
	"net/http"
	"testing"

	"github.com/joho/godotenv"
	"github.com/suritel/worklog-api/internal/config"
)

func TestSendMail(t *testing.T) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Fatal(err)
	}

	cfg := config.GetConfig()
	// isProduction = false to ensure that the send mail test always run in sandbox mode which won't send actual email to the user
	mail := NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, false, nil)

	vars := struct {
		Name         string
		Email        string
		TempPassword string
	}{
		Name:         "홍길동",
		Email:        "engineer@suritel.co.kr",
		TempPassword: "temp-password",
	}

	status, err := mail.Send(ACCOUNT_CREATED_TEMPLATE, vars.Name, vars.Email, vars)

	switch status {
	case http.StatusUnauthorized:
		t.Errorf("Unauthorized to send mail, check mail api_key and from_email")
	case http.StatusForbidden:
		t.Errorf("Forbidden to send mail, check mail from_email is it the correct email authorized in send grid?")
	}

	// If status == 202, it mean successful
	if status != http.StatusAccepted && status != http.StatusOK {
		t.Errorf("We got status %d, error: %v", status, err)
	}
}
