package service

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"rently-backend/internal/config"
)

type emailService struct {
	cfg config.SMTPConfig
}

func NewEmailService(cfg config.SMTPConfig) EmailService {
	return &emailService{cfg: cfg}
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, to, customerName, itemName string, start, end time.Time) error {
	subject := fmt.Sprintf("Booking confirmed: %s", itemName)
	body := fmt.Sprintf("Hello %s,\n\nYour booking for %s is confirmed from %s to %s.\n\nThank you for renting with us.",
		customerName, itemName, start.Format("02 Jan 2006"), end.Format("02 Jan 2006"))
	return s.send(ctx, to, subject, body)
}

func (s *emailService) SendBookingCompletion(ctx context.Context, to, customerName, itemName string) error {
	subject := "Booking completed"
	item := itemName
	if item == "" {
		item = "your rental"
	}
	body := fmt.Sprintf("Hello %s,\n\nYour booking for %s has been completed.\n\nWe hope to see you again soon.", customerName, item)
	return s.send(ctx, to, subject, body)
}

func (s *emailService) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
