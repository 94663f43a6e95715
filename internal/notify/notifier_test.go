package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizforge/internal/common/config"
	stderrors "bizforge/internal/common/errors"
	"bizforge/internal/common/logger"
	"bizforge/internal/models"
)

// ==========================
// Mock Implementations
// ==========================

type MockSESService struct {
	SendEmailFunc func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

func (m *MockSESService) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	return m.SendEmailFunc(ctx, params, optFns...)
}

type MockSNSService struct {
	PublishFunc func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

func (m *MockSNSService) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	return m.PublishFunc(ctx, params, optFns...)
}

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() config.NotificationConfig {
	var cfg config.NotificationConfig
	cfg.Email.Enabled = true
	cfg.Email.FromEmail = "noreply@bizforge.app"
	cfg.SMS.Enabled = true
	cfg.SMS.SenderID = "BIZFORGE"
	cfg.AWS.Region = "us-east-1"
	return cfg
}

func testBusiness() models.BusinessInfo {
	return models.BusinessInfo{
		Name:  "Joe's Plumbing",
		Email: "joe@example.com",
		Phone: "+15125551234",
	}
}

func successResult() models.DeployResult {
	return models.DeployResult{Success: true, NetlifyURL: "https://joes-plumbing.netlify.app"}
}

func TestDeployFinishedSendsEmailAndSMSOnSuccess(t *testing.T) {
	var emailTo, smsTo string

	sesMock := &MockSESService{
		SendEmailFunc: func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			emailTo = params.Destination.ToAddresses[0]
			assert.Equal(t, "noreply@bizforge.app", *params.Source)
			assert.Contains(t, *params.Message.Body.Text.Data, "https://joes-plumbing.netlify.app")
			return &ses.SendEmailOutput{}, nil
		},
	}
	snsMock := &MockSNSService{
		PublishFunc: func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
			smsTo = *params.PhoneNumber
			require.Contains(t, params.MessageAttributes, "AWS.SNS.SMS.SenderID")
			return &sns.PublishOutput{}, nil
		},
	}

	notifier := NewNotifierWithClients(createTestConfig(), logger.NewNoOpLogger(), sesMock, snsMock)
	err := notifier.DeployFinished(context.Background(), testBusiness(), successResult())

	require.NoError(t, err)
	assert.Equal(t, "joe@example.com", emailTo)
	assert.Equal(t, "+15125551234", smsTo)
}

func TestDeployFinishedFailureSkipsSMS(t *testing.T) {
	emailSent := false

	sesMock := &MockSESService{
		SendEmailFunc: func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			emailSent = true
			assert.Contains(t, *params.Message.Subject.Data, "did not complete")
			return &ses.SendEmailOutput{}, nil
		},
	}
	snsMock := &MockSNSService{
		PublishFunc: func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
			t.Fatal("SMS must not be sent for a failed deploy")
			return nil, nil
		},
	}

	notifier := NewNotifierWithClients(createTestConfig(), logger.NewNoOpLogger(), sesMock, snsMock)
	err := notifier.DeployFinished(context.Background(), testBusiness(),
		models.DeployResult{Success: false, Error: "Deploy timed out"})

	require.NoError(t, err)
	assert.True(t, emailSent)
}

func TestDeployFinishedEmailDisabled(t *testing.T) {
	cfg := createTestConfig()
	cfg.Email.Enabled = false
	cfg.SMS.Enabled = false

	notifier := NewNotifierWithClients(cfg, logger.NewNoOpLogger(), &MockSESService{}, &MockSNSService{})
	assert.NoError(t, notifier.DeployFinished(context.Background(), testBusiness(), successResult()))
}

func TestDeployFinishedNoContactInfo(t *testing.T) {
	notifier := NewNotifierWithClients(createTestConfig(), logger.NewNoOpLogger(), &MockSESService{}, &MockSNSService{})
	assert.NoError(t, notifier.DeployFinished(context.Background(), models.BusinessInfo{Name: "Joe's"}, successResult()))
}

func TestDeployFinishedEmailFailureReported(t *testing.T) {
	sesMock := &MockSESService{
		SendEmailFunc: func(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
			return nil, errors.New("ses unavailable")
		},
	}
	snsMock := &MockSNSService{
		PublishFunc: func(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
			return &sns.PublishOutput{}, nil
		},
	}

	notifier := NewNotifierWithClients(createTestConfig(), logger.NewNoOpLogger(), sesMock, snsMock)
	err := notifier.DeployFinished(context.Background(), testBusiness(), successResult())

	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeNotificationSendFailed, stderrors.CodeOf(err))
}
