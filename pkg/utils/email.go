package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

const (
	defaultEmailFrom = "parcel@pro.com"
	companyName      = "Parcel Pro"
)

// Common header template for all emails
const emailHeader = `
<!DOCTYPE html>
<html>
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 0;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<div style="text-align: center; margin-bottom: 30px; background-color: #f9f9f9; padding: 20px;">
			<h2 style="color: #4CAF50; margin: 0;">Parcel Pro</h2>
		</div>
`

// Common footer template for all emails
const emailFooter = `
		<div style="text-align: center; margin-top: 20px; font-size: 12px; color: #666; border-top: 1px solid #eee; padding-top: 20px;">
			<p>This is an automated message, please do not reply to this email.</p>
			<p>© 2025 Parcel Pro. All rights reserved.</p>
		</div>
	</div>
</body>
</html>
`

// sendEmail reads the SMTP configuration per call so values loaded from a
// .env file after process start are picked up.
func sendEmail(to []string, subject, body string) error {
	emailFrom := os.Getenv("EMAIL_FROM")
	if emailFrom == "" {
		emailFrom = defaultEmailFrom
	}
	emailPassword := os.Getenv("EMAIL_PASSWORD")
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")

	if emailPassword == "" || smtpHost == "" || smtpPort == "" {
		return fmt.Errorf("email configuration not set")
	}

	// Headers
	headers := make(map[string]string)
	headers["From"] = fmt.Sprintf("%s <%s>", companyName, emailFrom)
	headers["To"] = strings.Join(to, ",")
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"
	headers["X-Mailer"] = "ParcelPro-Mailer"

	// Build message
	message := ""
	for key, value := range headers {
		message += fmt.Sprintf("%s: %s\r\n", key, value)
	}
	message += "\r\n" + body

	// Authentication
	auth := smtp.PlainAuth("", emailFrom, emailPassword, smtpHost)

	// Send email
	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, emailFrom, to, []byte(message))
	if err != nil {
		log.Printf("Failed to send email: %v", err)
		return err
	}

	log.Printf("Successfully sent email to recipients: %v", to)
	return nil
}

// SendParcelBookedEmail tells the receiver a parcel is on its way.
func SendParcelBookedEmail(receiverEmail, senderEmail string) error {
	subject := fmt.Sprintf("%s has sent a parcel for you", senderEmail)
	body := fmt.Sprintf(emailHeader+`
				<div style="background-color: #f9f9f9; padding: 20px; border-radius: 5px;">
					<h1 style="color: #2c3e50; text-align: center;">Your parcel is on the way</h1>
					<p>Hi %s,</p>
					<p><strong>%s</strong> has sent a parcel for you. You will be notified as it moves through delivery.</p>
					<p>Have a splendid day!</p>
					<p>Thank you,<br>The Parcel Pro Team</p>
				</div>`+emailFooter,
		receiverEmail, senderEmail)

	return sendEmail([]string{receiverEmail}, subject, body)
}
