// internal/notify/notifier.go
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"

	"jobboard-api/internal/common/config"
	"jobboard-api/internal/common/logger"
	"jobboard-api/internal/models"
)

var ErrNotificationSendFailed = errors.New("NOTIFICATION_SEND_FAILED")

// EmailSender sends a templated email through SES.
type EmailSender interface {
	SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

// SMSSender publishes a text message through SNS.
type SMSSender interface {
	Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error)
}

// Notifier delivers candidate-facing notifications. Each channel is gated
// by config and skipped silently when disabled; callers treat every send
// as best-effort.
type Notifier struct {
	email EmailSender
	sms   SMSSender
	cfg   config.AWSConfig
	log   logger.Logger
}

func New(email EmailSender, sms SMSSender, cfg config.AWSConfig, log logger.Logger) *Notifier {
	return &Notifier{email: email, sms: sms, cfg: cfg, log: log}
}

// statusMessages maps review outcomes onto candidate-facing SMS texts.
var statusMessages = map[string]string{
	models.ApplicationStatusReviewed:    "Your application is being reviewed.",
	models.ApplicationStatusShortlisted: "Good news! You have been shortlisted.",
	models.ApplicationStatusRejected:    "Your application was not selected this time.",
	models.ApplicationStatusHired:       "Congratulations! You got the job.",
}

// ApplicationReceived emails the candidate a submission confirmation.
func (n *Notifier) ApplicationReceived(ctx context.Context, app *models.Application, jobTitle string) error {
	if !n.cfg.SES.Enabled || n.email == nil {
		return nil
	}

	subject := fmt.Sprintf("Application received: %s", jobTitle)
	body := fmt.Sprintf(
		"Hi %s,\n\nWe received your application for %s. "+
			"The employer will review it and you will hear back once its status changes.\n\n"+
			"Application reference: %s\n",
		app.FullName, jobTitle, app.ID,
	)

	input := &ses.SendEmailInput{
		Source: aws.String(n.cfg.SES.FromEmail),
		Destination: &sestypes.Destination{
			ToAddresses: []string{app.Email},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: aws.String(subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: aws.String(body)},
			},
		},
	}

	if _, err := n.email.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("%w: confirmation email: %v", ErrNotificationSendFailed, err)
	}

	n.log.Info("confirmation email sent", map[string]interface{}{
		"applicationId": app.ID,
		"to":            app.Email,
	})
	return nil
}

// StatusChanged texts the candidate when a reviewer advances their
// application.
func (n *Notifier) StatusChanged(ctx context.Context, app *models.Application, newStatus string) error {
	if !n.cfg.SNS.Enabled || n.sms == nil {
		return nil
	}
	if app.Phone == "" {
		return nil
	}

	message, ok := statusMessages[newStatus]
	if !ok {
		return nil
	}

	input := &sns.PublishInput{
		PhoneNumber: aws.String(app.Phone),
		Message:     aws.String(message),
	}
	if n.cfg.SNS.DefaultSMSSenderID != "" {
		input.MessageAttributes = map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {
				DataType:    aws.String("String"),
				StringValue: aws.String(n.cfg.SNS.DefaultSMSSenderID),
			},
		}
	}

	if _, err := n.sms.Publish(ctx, input); err != nil {
		return fmt.Errorf("%w: status sms: %v", ErrNotificationSendFailed, err)
	}

	n.log.Info("status sms sent", map[string]interface{}{
		"applicationId": app.ID,
		"status":        newStatus,
	})
	return nil
}
