// internal/common/aws/ses.go
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
)

// SESClient sends the transactional email the application flow produces,
// such as the candidate's submission confirmation.
type SESClient struct {
	client *ses.Client
}

// NewSESClient builds an SES client from the default credential chain in
// the given region.
func NewSESClient(ctx context.Context, region string) (*SESClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config for ses in %s: %w", region, err)
	}
	return &SESClient{client: ses.NewFromConfig(cfg)}, nil
}

// SendEmail delivers one message through SES.
func (s *SESClient) SendEmail(ctx context.Context, input *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	return s.client.SendEmail(ctx, input)
}
