package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	cw "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"github.com/raywall/apigateway-kit/internal/config"
)

// AWSClient holds the SDK clients and the resolved account information.
type AWSClient struct {
	Config    aws.Config
	APIGW     *apigw.Client
	IAM       *iam.Client
	Lambda    *lambda.Client
	CWLogs    *cw.Client
	S3        *s3.Client
	STS       *sts.Client
	Region    string
	AccountID string
}

// CallerIdentity is the subset of STS used to resolve the account id.
type CallerIdentity interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// New loads the shared AWS configuration for cfg and builds every client.
func New(ctx context.Context, cfg *config.Config) (*AWSClient, error) {
	awsCfg, err := LoadAWSConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	c := &AWSClient{
		Config: awsCfg,
		APIGW:  apigw.NewFromConfig(awsCfg),
		IAM:    iam.NewFromConfig(awsCfg),
		Lambda: lambda.NewFromConfig(awsCfg),
		CWLogs: cw.NewFromConfig(awsCfg),
		S3:     s3.NewFromConfig(awsCfg),
		STS:    sts.NewFromConfig(awsCfg),
		Region: awsCfg.Region,
	}
	return c, nil
}

// LoadAWSConfig resolves credentials and region from the environment, the
// shared config files and cfg.
func LoadAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg != nil {
		if region := strings.TrimSpace(cfg.Region); region != "" {
			opts = append(opts, awsconfig.WithRegion(region))
		}
		if profile := strings.TrimSpace(cfg.Profile); profile != "" {
			opts = append(opts, awsconfig.WithSharedConfigProfile(profile))
		}
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("loading aws config: %w", err)
	}
	return awsCfg, nil
}

// ResolveAccountID looks up and caches the caller's account id. Lambda
// permissions need it to build source ARNs.
func (c *AWSClient) ResolveAccountID(ctx context.Context) (string, error) {
	if c.AccountID != "" {
		return c.AccountID, nil
	}
	id, err := GetAccountID(ctx, c.STS)
	if err != nil {
		return "", err
	}
	c.AccountID = id
	return id, nil
}

// GetAccountID returns the account of the current credentials.
func GetAccountID(ctx context.Context, identity CallerIdentity) (string, error) {
	result, err := identity.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("getting account ID: %w", err)
	}
	return aws.ToString(result.Account), nil
}
