package mailer

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendReport(toEmail, companyName, htmlBody string, pdf []byte) error
	SendReportFailure(toEmail, companyName, reason string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendReport(toEmail, companyName, htmlBody string, pdf []byte) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Smart Summary Report: %s", companyName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<p>Your financial report for <b>%s</b> is ready.</p>
			%s
		</div>
	`, companyName, htmlBody)

	m.SetBody("text/html", body)

	if len(pdf) > 0 {
		m.Attach("smart-summary-report.pdf", gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(pdf)
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send report to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Report sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendReportFailure(toEmail, companyName, reason string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Report generation failed: %s", companyName))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<p>We could not generate the report for <b>%s</b>.</p>
			<p>Reason: %s</p>
			<p>Please try again in a few minutes.</p>
		</div>
	`, companyName, reason)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send failure notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Failure notice sent to %s\n", toEmail)
	return nil
}
