package utils

import (
	"fmt"
	"log"
	"os"

	"go-bookstore/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService sends transactional mail through SendGrid. When no API
// key is configured the service logs and drops mail instead of failing
// the request that triggered it.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance.
func NewEmailService() *EmailService {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		log.Println("SENDGRID_API_KEY not set; outgoing email disabled")
		return &EmailService{}
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: os.Getenv("EMAIL_SENDER"),
	}
}

// SendEmail sends a basic email to the specified recipient.
func (es *EmailService) SendEmail(toEmail, subject, content string) error {
	if es.client == nil {
		log.Printf("email disabled; dropping %q to %s", subject, toEmail)
		return nil
	}
	from := mail.NewEmail("", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, content, content)
	response, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("failed to send email: status %d", response.StatusCode)
	}
	return nil
}

// SendOrderConfirmationEmail sends an order confirmation to the
// customer.
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order models.Order) error {
	subject := "Order Confirmation"
	content := fmt.Sprintf(
		"Dear %s,\n\nThank you for your order!\n\nOrder ID: %s\nSubtotal: $%.2f\nShipping: $%.2f\nTotal: $%.2f\nPayment: cash on delivery\n\nThank you for shopping with us!\n",
		order.Customer.Name, order.ID.Hex(), order.Subtotal, order.Shipping, order.TotalAmount,
	)
	return es.SendEmail(toEmail, subject, content)
}
