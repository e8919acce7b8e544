// internal/common/aws/sns.go
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// SNSClient delivers the status-change SMS messages employers trigger when
// advancing an application.
type SNSClient struct {
	client *sns.Client
}

// NewSNSClient builds an SNS client from the default credential chain in
// the given region.
func NewSNSClient(ctx context.Context, region string) (*SNSClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config for sns in %s: %w", region, err)
	}
	return &SNSClient{client: sns.NewFromConfig(cfg)}, nil
}

// Publish delivers one message through SNS.
func (s *SNSClient) Publish(ctx context.Context, input *sns.PublishInput) (*sns.PublishOutput, error) {
	return s.client.Publish(ctx, input)
}
