package service

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/raywall/apigateway-kit/internal/awsmock"
	"github.com/raywall/apigateway-kit/internal/repository"
)

var fastRetry = repository.RetryPolicy{InitialInterval: time.Millisecond, MaxInterval: 2 * time.Millisecond, MaxRetries: 2}

func newAPIGWRepo(api *awsmock.MockAPIGateway) *repository.APIGWRepository {
	return &repository.APIGWRepository{API: api, Log: zerolog.Nop(), ParamValidation: true, Retry: fastRetry}
}
