package client

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/apigateway-kit/internal/config"
)

type fakeIdentity struct {
	account string
	err     error
}

func (f fakeIdentity) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &sts.GetCallerIdentityOutput{Account: aws.String(f.account)}, nil
}

func TestGetAccountID(t *testing.T) {
	id, err := GetAccountID(context.Background(), fakeIdentity{account: "123456789012"})
	require.NoError(t, err)
	assert.Equal(t, "123456789012", id)

	_, err = GetAccountID(context.Background(), fakeIdentity{err: errors.New("expired token")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getting account ID")
}

func TestNew_UsesConfiguredRegion(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "AKIDEXAMPLE")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	t.Setenv("AWS_CONFIG_FILE", "/dev/null")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/dev/null")

	cfg := config.Default()
	cfg.Region = "sa-east-1"

	c, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", c.Region)
	assert.NotNil(t, c.APIGW)
	assert.NotNil(t, c.S3)

	c.AccountID = "000000000000"
	id, err := c.ResolveAccountID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "000000000000", id)
}
