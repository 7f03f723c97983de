package utils

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendInvitationEmail notifies an invitee about a new shipment invitation.
// Callers treat failures as best-effort; the invitation itself lives in
// the notifications collection.
func SendInvitationEmail(toEmail, senderEmail, shipmentID string) error {
	from := os.Getenv("SMTP_EMAIL")
	password := os.Getenv("SMTP_PASSWORD")
	if from == "" {
		return fmt.Errorf("smtp not configured")
	}

	smtpHost := os.Getenv("SMTP_HOST")
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}
	smtpPort := os.Getenv("SMTP_PORT")
	if smtpPort == "" {
		smtpPort = "587"
	}

	subject := "You have been invited to collaborate on a shipment"
	body := fmt.Sprintf("%s invited you to collaborate on shipment %s.\nLog in to accept or reject the invitation.", senderEmail, shipmentID)
	message := []byte("Subject: " + subject + "\r\n\r\n" + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{toEmail}, message)
}
