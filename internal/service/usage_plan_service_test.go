package service

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/aws/smithy-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/apigateway-kit/internal/awsmock"
	"github.com/raywall/apigateway-kit/pkg/model"
	dto "github.com/raywall/apigateway-kit/pkg/types"
)

func opStrings(ops []*model.PatchOperation) []string {
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		s := string(op.GetOp()) + " " + op.GetPath()
		if op.Value != nil {
			s += "=" + op.GetValue()
		}
		out = append(out, s)
	}
	return out
}

func TestUsagePlanPatches(t *testing.T) {
	base := dto.UsagePlanConfig{
		Name:     "basic",
		Throttle: &dto.ThrottleConfig{BurstLimit: 10, RateLimit: 5},
		Quota:    &dto.QuotaConfig{Limit: 1000, Period: "MONTH"},
		Stages:   []dto.StageConfig{{APIID: "a1", Stage: "prod"}},
	}

	tests := []struct {
		name   string
		mutate func(c *dto.UsagePlanConfig)
		want   []string
	}{
		{
			name:   "no changes",
			mutate: func(c *dto.UsagePlanConfig) {},
			want:   []string{},
		},
		{
			name: "rename and describe",
			mutate: func(c *dto.UsagePlanConfig) {
				c.Name = "gold"
				c.Description = "paid tier"
			},
			want: []string{"replace /name=gold", "replace /description=paid tier"},
		},
		{
			name:   "throttle rate only",
			mutate: func(c *dto.UsagePlanConfig) { c.Throttle = &dto.ThrottleConfig{BurstLimit: 10, RateLimit: 2.5} },
			want:   []string{"replace /throttle/rateLimit=2.5"},
		},
		{
			name: "drop throttle and quota",
			mutate: func(c *dto.UsagePlanConfig) {
				c.Throttle = nil
				c.Quota = nil
			},
			want: []string{"remove /throttle", "remove /quota"},
		},
		{
			name: "swap stages",
			mutate: func(c *dto.UsagePlanConfig) {
				c.Stages = []dto.StageConfig{{APIID: "a1", Stage: "dev"}, {APIID: "b2", Stage: "prod"}}
			},
			want: []string{"remove /apiStages=a1:prod", "add /apiStages=a1:dev", "add /apiStages=b2:prod"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desired := base
			tt.mutate(&desired)
			assert.Equal(t, tt.want, opStrings(UsagePlanPatches(&base, &desired)))
		})
	}
}

func TestUsagePlanPatches_AddsQuotaFromScratch(t *testing.T) {
	ops := UsagePlanPatches(&dto.UsagePlanConfig{Name: "p"}, &dto.UsagePlanConfig{
		Name:  "p",
		Quota: &dto.QuotaConfig{Limit: 100, Offset: 0, Period: "DAY"},
	})
	assert.Equal(t, []string{"replace /quota/limit=100", "replace /quota/offset=0", "replace /quota/period=DAY"}, opStrings(ops))
}

func TestUsagePlanService_CreateAssociatesKeys(t *testing.T) {
	var created *apigw.CreateUsagePlanInput
	var keys []string
	api := &awsmock.MockAPIGateway{
		CreateUsagePlanFunc: func(ctx context.Context, params *apigw.CreateUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.CreateUsagePlanOutput, error) {
			created = params
			return &apigw.CreateUsagePlanOutput{Id: aws.String("up1"), Name: params.Name}, nil
		},
		CreateUsagePlanKeyFunc: func(ctx context.Context, params *apigw.CreateUsagePlanKeyInput, optFns ...func(*apigw.Options)) (*apigw.CreateUsagePlanKeyOutput, error) {
			assert.Equal(t, "API_KEY", aws.ToString(params.KeyType))
			keys = append(keys, aws.ToString(params.KeyId))
			if aws.ToString(params.KeyId) == "k2" {
				return nil, &smithy.GenericAPIError{Code: "ConflictException", Message: "already associated"}
			}
			return &apigw.CreateUsagePlanKeyOutput{Id: params.KeyId}, nil
		},
	}
	svc := &UsagePlanService{APIGWRepo: newAPIGWRepo(api), Region: "us-east-1", Log: zerolog.Nop()}

	id, err := svc.Create(context.Background(), &dto.UsagePlanConfig{
		Name:      "basic",
		Throttle:  &dto.ThrottleConfig{BurstLimit: 20, RateLimit: 10},
		Quota:     &dto.QuotaConfig{Limit: 5000, Period: "WEEK"},
		Stages:    []dto.StageConfig{{APIID: "a1", Stage: "prod"}},
		APIKeyIDs: []string{"k1", "k2"},
	})
	require.NoError(t, err)

	assert.Equal(t, "up1", id)
	assert.Equal(t, []string{"k1", "k2"}, keys)
	require.Len(t, created.ApiStages, 1)
	assert.Equal(t, "a1", aws.ToString(created.ApiStages[0].ApiId))
	assert.Equal(t, apigwtypes.QuotaPeriodTypeWeek, created.Quota.Period)
}

func TestUsagePlanService_ReadPagesKeys(t *testing.T) {
	api := &awsmock.MockAPIGateway{
		GetUsagePlanFunc: func(ctx context.Context, params *apigw.GetUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.GetUsagePlanOutput, error) {
			return &apigw.GetUsagePlanOutput{
				Id:        params.UsagePlanId,
				Name:      aws.String("basic"),
				ApiStages: []apigwtypes.ApiStage{{ApiId: aws.String("a1"), Stage: aws.String("prod")}},
				Quota:     &apigwtypes.QuotaSettings{Limit: 100, Period: apigwtypes.QuotaPeriodTypeDay},
			}, nil
		},
		GetUsagePlanKeysFunc: func(ctx context.Context, params *apigw.GetUsagePlanKeysInput, optFns ...func(*apigw.Options)) (*apigw.GetUsagePlanKeysOutput, error) {
			if params.Position == nil {
				return &apigw.GetUsagePlanKeysOutput{Items: []apigwtypes.UsagePlanKey{{Id: aws.String("k9")}}, Position: aws.String("next")}, nil
			}
			return &apigw.GetUsagePlanKeysOutput{Items: []apigwtypes.UsagePlanKey{{Id: aws.String("k1")}}}, nil
		},
	}
	svc := &UsagePlanService{APIGWRepo: newAPIGWRepo(api), Log: zerolog.Nop()}

	cfg, err := svc.Read(context.Background(), "up1")
	require.NoError(t, err)
	assert.Equal(t, "basic", cfg.Name)
	assert.Equal(t, []string{"k1", "k9"}, cfg.APIKeyIDs)
	assert.Equal(t, []dto.StageConfig{{APIID: "a1", Stage: "prod"}}, cfg.Stages)
	assert.Equal(t, &dto.QuotaConfig{Limit: 100, Period: "DAY"}, cfg.Quota)
	assert.Nil(t, cfg.Throttle)
}

func TestUsagePlanService_ReadMissing(t *testing.T) {
	api := &awsmock.MockAPIGateway{
		GetUsagePlanFunc: func(ctx context.Context, params *apigw.GetUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.GetUsagePlanOutput, error) {
			return nil, &smithy.GenericAPIError{Code: "NotFoundException", Message: "Invalid Usage Plan ID specified"}
		},
	}
	svc := &UsagePlanService{APIGWRepo: newAPIGWRepo(api), Log: zerolog.Nop()}

	cfg, err := svc.Read(context.Background(), "gone")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestUsagePlanService_UpdateKeysAndTags(t *testing.T) {
	var (
		patched  []apigwtypes.PatchOperation
		removed  []string
		added    []string
		tagged   map[string]string
		untagged []string
		arns     []string
	)
	api := &awsmock.MockAPIGateway{
		UpdateUsagePlanFunc: func(ctx context.Context, params *apigw.UpdateUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.UpdateUsagePlanOutput, error) {
			patched = params.PatchOperations
			return &apigw.UpdateUsagePlanOutput{Id: params.UsagePlanId}, nil
		},
		DeleteUsagePlanKeyFunc: func(ctx context.Context, params *apigw.DeleteUsagePlanKeyInput, optFns ...func(*apigw.Options)) (*apigw.DeleteUsagePlanKeyOutput, error) {
			removed = append(removed, aws.ToString(params.KeyId))
			return &apigw.DeleteUsagePlanKeyOutput{}, nil
		},
		CreateUsagePlanKeyFunc: func(ctx context.Context, params *apigw.CreateUsagePlanKeyInput, optFns ...func(*apigw.Options)) (*apigw.CreateUsagePlanKeyOutput, error) {
			added = append(added, aws.ToString(params.KeyId))
			return &apigw.CreateUsagePlanKeyOutput{}, nil
		},
		TagResourceFunc: func(ctx context.Context, params *apigw.TagResourceInput, optFns ...func(*apigw.Options)) (*apigw.TagResourceOutput, error) {
			arns = append(arns, aws.ToString(params.ResourceArn))
			tagged = params.Tags
			return &apigw.TagResourceOutput{}, nil
		},
		UntagResourceFunc: func(ctx context.Context, params *apigw.UntagResourceInput, optFns ...func(*apigw.Options)) (*apigw.UntagResourceOutput, error) {
			untagged = params.TagKeys
			return &apigw.UntagResourceOutput{}, nil
		},
	}
	svc := &UsagePlanService{APIGWRepo: newAPIGWRepo(api), Region: "sa-east-1", Log: zerolog.Nop()}

	old := &dto.UsagePlanConfig{Name: "basic", APIKeyIDs: []string{"k1", "k2"}, Tags: map[string]string{"team": "a", "env": "dev"}}
	desired := &dto.UsagePlanConfig{Name: "gold", APIKeyIDs: []string{"k2", "k3"}, Tags: map[string]string{"team": "b"}}

	require.NoError(t, svc.Update(context.Background(), "up1", old, desired))

	require.Len(t, patched, 1)
	assert.Equal(t, apigwtypes.OpReplace, patched[0].Op)
	assert.Equal(t, []string{"k1"}, removed)
	assert.Equal(t, []string{"k3"}, added)
	assert.Equal(t, map[string]string{"team": "b"}, tagged)
	assert.Equal(t, []string{"env"}, untagged)
	assert.Equal(t, []string{"arn:aws:apigateway:sa-east-1::/usageplans/up1"}, arns)
}

func TestUsagePlanService_DeleteDetachesStages(t *testing.T) {
	var calls []string
	api := &awsmock.MockAPIGateway{
		UpdateUsagePlanFunc: func(ctx context.Context, params *apigw.UpdateUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.UpdateUsagePlanOutput, error) {
			for _, op := range params.PatchOperations {
				calls = append(calls, string(op.Op)+" "+aws.ToString(op.Value))
			}
			return &apigw.UpdateUsagePlanOutput{}, nil
		},
		DeleteUsagePlanFunc: func(ctx context.Context, params *apigw.DeleteUsagePlanInput, optFns ...func(*apigw.Options)) (*apigw.DeleteUsagePlanOutput, error) {
			calls = append(calls, "delete "+aws.ToString(params.UsagePlanId))
			return nil, &smithy.GenericAPIError{Code: "NotFoundException"}
		},
	}
	svc := &UsagePlanService{APIGWRepo: newAPIGWRepo(api), Log: zerolog.Nop()}

	err := svc.Delete(context.Background(), "up1", &dto.UsagePlanConfig{Stages: []dto.StageConfig{{APIID: "a1", Stage: "prod"}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"remove a1:prod", "delete up1"}, calls)
}
