package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHash_KnownValues(t *testing.T) {
	tests := []struct {
		name  string
		shape interface{ Hash() int32 }
		want  int32
	}{
		{
			name:  "string and boolean members",
			shape: new(CreateApiKeyRequest).SetName("demo").SetEnabled(true),
			want:  2130133071,
		},
		{
			name:  "integer and double members",
			shape: new(ThrottleSettings).SetBurstLimit(100).SetRateLimit(50.5),
			want:  1078546397,
		},
		{
			name:  "empty shape",
			shape: new(GetAccountRequest),
			want:  1,
		},
		{
			name:  "unset members hash to zero",
			shape: new(TlsConfig),
			want:  31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.Hash())
		})
	}
}

func TestHashString(t *testing.T) {
	assert.Equal(t, int32(0), hashString(""))
	assert.Equal(t, int32(3079651), hashString("demo"))
}

func TestHash_MapIsOrderIndependent(t *testing.T) {
	a := new(TagResourceRequest).SetTags(map[string]string{"env": "prod", "team": "core"})
	b := new(TagResourceRequest)
	_ = b.AddTagsEntry("team", "core")
	_ = b.AddTagsEntry("env", "prod")

	assert.Equal(t, a.Hash(), b.Hash())
	assert.Equal(t, int32(3484602), hashValue(reflect.ValueOf(map[string]string{"env": "prod"})))
}

func TestHash_NilShape(t *testing.T) {
	var s *UsagePlan
	assert.Equal(t, int32(0), s.Hash())
}
