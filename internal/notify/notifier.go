// Package notify tells a business owner how their deployment ended, over
// email and optionally SMS. Sends are best effort: a failed notification is
// logged and reported but never fails the deployment itself.
package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"

	"bizforge/internal/common/config"
	"bizforge/internal/common/errors"
	"bizforge/internal/common/logger"
	"bizforge/internal/models"
)

// Interfaces over the AWS clients so tests can swap in mocks.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type Notifier struct {
	cfg       config.NotificationConfig
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
}

func NewNotifier(ctx context.Context, cfg config.NotificationConfig, log logger.Logger) (*Notifier, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWS.Region))
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &Notifier{
		cfg:       cfg,
		logger:    log,
		sesClient: ses.NewFromConfig(awsCfg),
		snsClient: sns.NewFromConfig(awsCfg),
	}, nil
}

// NewNotifierWithClients wires explicit clients, used by tests.
func NewNotifierWithClients(cfg config.NotificationConfig, log logger.Logger, sesClient SESService, snsClient SNSService) *Notifier {
	return &Notifier{cfg: cfg, logger: log, sesClient: sesClient, snsClient: snsClient}
}

// DeployFinished notifies the business contact about the deploy outcome.
// Email goes out whenever enabled and an address exists; SMS only for a
// successful deploy, since a failure message with no link reads as spam.
func (n *Notifier) DeployFinished(ctx context.Context, biz models.BusinessInfo, result models.DeployResult) error {
	subject, body := composeDeployMessage(biz, result)

	var firstErr error

	if n.cfg.Email.Enabled && biz.Email != "" {
		if err := n.sendEmail(ctx, biz.Email, subject, body); err != nil {
			n.logger.Error("deploy notification email failed", map[string]interface{}{
				"email": biz.Email,
				"error": err.Error(),
			})
			firstErr = errors.NewNotificationSendFailedError("email", err)
		}
	}

	if n.cfg.SMS.Enabled && biz.Phone != "" && result.Success {
		if err := n.sendSMS(ctx, biz.Phone, body); err != nil {
			n.logger.Error("deploy notification SMS failed", map[string]interface{}{
				"phone": biz.Phone,
				"error": err.Error(),
			})
			if firstErr == nil {
				firstErr = errors.NewNotificationSendFailedError("sms", err)
			}
		}
	}

	return firstErr
}

func composeDeployMessage(biz models.BusinessInfo, result models.DeployResult) (subject, body string) {
	if result.Success {
		subject = fmt.Sprintf("Your website for %s is live", biz.Name)
		body = fmt.Sprintf("Good news! The website for %s is now live at %s.", biz.Name, result.NetlifyURL)
		return subject, body
	}

	subject = fmt.Sprintf("Website deployment for %s did not complete", biz.Name)
	body = fmt.Sprintf("The deployment for %s failed: %s. You can retry from the dashboard.", biz.Name, result.Error)
	return subject, body
}

func (n *Notifier) sendEmail(ctx context.Context, to, subject, body string) error {
	_, err := n.sesClient.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
				Html: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(n.cfg.Email.FromEmail),
	})
	return err
}

func (n *Notifier) sendSMS(ctx context.Context, to, message string) error {
	input := &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(message),
	}
	if n.cfg.SMS.SenderID != "" {
		input.MessageAttributes = map[string]snstypes.MessageAttributeValue{
			"AWS.SNS.SMS.SenderID": {
				DataType:    aws.String("String"),
				StringValue: aws.String(n.cfg.SMS.SenderID),
			},
		}
	}
	_, err := n.snsClient.Publish(ctx, input)
	return err
}
