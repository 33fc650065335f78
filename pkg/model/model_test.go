package model

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateApiKeyRequest_Scenario(t *testing.T) {
	req := new(CreateApiKeyRequest).SetName("demo").SetEnabled(true)

	assert.Equal(t, "demo", req.GetName())
	assert.True(t, req.GetEnabled())

	require.NoError(t, req.AddTagsEntry("env", "prod"))
	err := req.AddTagsEntry("env", "dev")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateKey))
	assert.Equal(t, "prod", req.GetTags()["env"], "a rejected entry must not overwrite the stored one")

	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "CreateApiKeyRequest", dup.Shape)
	assert.Equal(t, "tags", dup.Member)
	assert.Equal(t, "env", dup.Key)

	req.ClearTagsEntries()
	assert.Nil(t, req.GetTags())
}

func TestGetters_NilSafe(t *testing.T) {
	var req *CreateUsagePlanRequest

	assert.Equal(t, "", req.GetName())
	assert.Nil(t, req.GetThrottle())
	assert.Nil(t, req.GetApiStages())
	assert.Nil(t, req.GetTags())
	assert.Equal(t, int32(0), req.GetThrottle().GetBurstLimit())
	assert.Equal(t, QuotaPeriodType(""), req.GetQuota().GetPeriod())
}

func TestAccessors_RoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	stage := new(Stage).
		SetStageName("prod").
		SetCacheClusterEnabled(true).
		SetCacheClusterSize(CacheClusterSizeSize0Point5Gb).
		SetCreatedDate(created).
		SetCanarySettings(new(CanarySettings).SetPercentTraffic(12.5)).
		SetVariables(map[string]string{"lambdaAlias": "live"})

	assert.Equal(t, "prod", stage.GetStageName())
	assert.True(t, stage.GetCacheClusterEnabled())
	assert.Equal(t, CacheClusterSizeSize0Point5Gb, stage.GetCacheClusterSize())
	assert.Equal(t, created, stage.GetCreatedDate())
	assert.Equal(t, 12.5, stage.GetCanarySettings().GetPercentTraffic())
	assert.Equal(t, "live", stage.GetVariables()["lambdaAlias"])

	put := new(PutRestApiRequest).SetBody([]byte(`{"openapi":"3.0.1"}`)).SetMode(PutModeOverwrite)
	assert.Equal(t, []byte(`{"openapi":"3.0.1"}`), put.GetBody())
	assert.Equal(t, PutMode("overwrite"), put.GetMode())

	usage := new(GetUsageResult).SetItems(map[string][][]int64{"key-1": {{10, 90}, {5, 85}}})
	assert.Equal(t, int64(85), usage.GetItems()["key-1"][1][1])
}

func TestAddEntry_NestedMapValues(t *testing.T) {
	dep := new(CreateDeploymentResult)
	summary := map[string]*MethodSnapshot{"GET": new(MethodSnapshot).SetAuthorizationType("NONE")}

	require.NoError(t, dep.AddApiSummaryEntry("/pets", summary))
	assert.True(t, errors.Is(dep.AddApiSummaryEntry("/pets", nil), ErrDuplicateKey))
	assert.Equal(t, "NONE", dep.GetApiSummary()["/pets"]["GET"].GetAuthorizationType())

	stage := new(ApiStage)
	require.NoError(t, stage.AddThrottleEntry("/pets/GET", new(ThrottleSettings).SetBurstLimit(10)))
	assert.Equal(t, int32(10), stage.GetThrottle()["/pets/GET"].GetBurstLimit())
}

func newUsagePlan() *CreateUsagePlanRequest {
	return new(CreateUsagePlanRequest).
		SetName("gold").
		SetDescription("gold tier").
		SetApiStages([]*ApiStage{new(ApiStage).SetApiId("a1b2c3").SetStage("prod")}).
		SetThrottle(new(ThrottleSettings).SetBurstLimit(100).SetRateLimit(50.5)).
		SetQuota(new(QuotaSettings).SetLimit(10000).SetPeriod(QuotaPeriodTypeMonth)).
		SetTags(map[string]string{"team": "payments"})
}

func TestEqualAndHash(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateUsagePlanRequest)
	}{
		{name: "scalar", mutate: func(r *CreateUsagePlanRequest) { r.SetName("silver") }},
		{name: "unset scalar", mutate: func(r *CreateUsagePlanRequest) { r.Description = nil }},
		{name: "nested shape", mutate: func(r *CreateUsagePlanRequest) { r.Throttle.SetRateLimit(51) }},
		{name: "enum", mutate: func(r *CreateUsagePlanRequest) { r.Quota.SetPeriod(QuotaPeriodTypeWeek) }},
		{name: "list element", mutate: func(r *CreateUsagePlanRequest) { r.ApiStages[0].SetStage("beta") }},
		{name: "map value", mutate: func(r *CreateUsagePlanRequest) { r.Tags["team"] = "risk" }},
	}

	a := newUsagePlan()
	assert.True(t, a.Equal(a))
	assert.True(t, a.Equal(newUsagePlan()))
	assert.Equal(t, a.Hash(), newUsagePlan().Hash())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newUsagePlan()
			tt.mutate(b)
			assert.False(t, a.Equal(b))
			assert.False(t, b.Equal(a))
		})
	}
}

func TestEqual_Nil(t *testing.T) {
	var a, b *ThrottleSettings
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(new(ThrottleSettings)))
	assert.False(t, new(ThrottleSettings).Equal(nil))
	assert.True(t, new(ThrottleSettings).Equal(new(ThrottleSettings)))
}

func TestEqual_TimestampsCompareInstants(t *testing.T) {
	utc := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	local := utc.In(time.FixedZone("BRT", -3*60*60))

	a := new(ApiKey).SetCreatedDate(utc)
	b := new(ApiKey).SetCreatedDate(local)
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestEqual_Doubles(t *testing.T) {
	negZero := math.Copysign(0, -1)

	nan := new(ThrottleSettings).SetRateLimit(math.NaN())
	assert.True(t, nan.Equal(nan))
	assert.True(t, nan.Equal(nan.Copy()))
	assert.True(t, nan.Equal(new(ThrottleSettings).SetRateLimit(math.Float64frombits(0x7ff8000000000001))))
	assert.Equal(t, nan.Hash(), nan.Copy().Hash())

	canary := new(CanarySettings).SetPercentTraffic(math.NaN())
	assert.True(t, canary.Equal(canary.Copy()))

	zero := new(ThrottleSettings).SetRateLimit(0)
	neg := new(ThrottleSettings).SetRateLimit(negZero)
	assert.False(t, zero.Equal(neg))
	assert.NotEqual(t, zero.Hash(), neg.Hash())
	assert.True(t, neg.Equal(new(ThrottleSettings).SetRateLimit(negZero)))
	assert.Equal(t, neg.Hash(), new(ThrottleSettings).SetRateLimit(negZero).Hash())

	assert.False(t, new(ThrottleSettings).SetRateLimit(1).Equal(new(ThrottleSettings).SetRateLimit(2)))
}

func TestCopy_IsDeep(t *testing.T) {
	a := newUsagePlan()
	b := a.Copy()
	require.True(t, a.Equal(b))

	b.Throttle.SetBurstLimit(1)
	b.Tags["team"] = "other"
	b.ApiStages[0].SetApiId("zzz")

	assert.Equal(t, int32(100), a.GetThrottle().GetBurstLimit())
	assert.Equal(t, "payments", a.GetTags()["team"])
	assert.Equal(t, "a1b2c3", a.GetApiStages()[0].GetApiId())
	assert.Nil(t, (*ApiKey)(nil).Copy())
}

func TestString(t *testing.T) {
	req := new(CreateApiKeyRequest).SetName("demo").SetEnabled(true)
	assert.Equal(t, "{name: demo,enabled: true}", req.String())

	assert.Equal(t, "{}", new(GetAccountRequest).String())

	plan := new(UsagePlan).
		SetName("gold").
		SetThrottle(new(ThrottleSettings).SetBurstLimit(10)).
		SetApiStages([]*ApiStage{new(ApiStage).SetStage("prod")}).
		SetTags(map[string]string{"b": "2", "a": "1"})
	assert.Equal(t, "{name: gold,apiStages: [{stage: prod}],throttle: {burstLimit: 10},tags: {a=1, b=2}}", plan.String())

	put := new(PutRestApiRequest).SetRestApiId("abc").SetBody([]byte("12345"))
	assert.Equal(t, "{restApiId: abc,body: <binary> len 5}", put.String())

	key := new(ApiKey).SetCreatedDate(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, "{createdDate: 2024-03-01T12:00:00Z}", key.String())
}

func TestExceptions(t *testing.T) {
	var err error = new(NotFoundException).SetMessage("Invalid API identifier specified")

	assert.Equal(t, "NotFoundException: Invalid API identifier specified", err.Error())

	var nf *NotFoundException
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "NotFoundException", nf.ErrorCode())
	assert.Equal(t, "Invalid API identifier specified", nf.ErrorMessage())

	tooMany := new(TooManyRequestsException).SetRetryAfterSeconds("2")
	assert.Equal(t, "2", tooMany.GetRetryAfterSeconds())
	assert.Equal(t, "server", new(ServiceUnavailableException).ErrorFault().String())
}
