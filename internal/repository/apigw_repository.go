package repository

import (
	"context"
	"fmt"

	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/rs/zerolog"

	"github.com/raywall/apigateway-kit/internal/client"
	"github.com/raywall/apigateway-kit/internal/config"
	"github.com/raywall/apigateway-kit/pkg/model"
)

// APIGWRepository encapsula operações da AWS API Gateway (v1) sobre os
// shapes do modelo.
type APIGWRepository struct {
	API APIGatewayAPI
	Log zerolog.Logger

	// ParamValidation valida os campos obrigatórios antes de enviar.
	ParamValidation bool
	Retry           RetryPolicy
}

// NewAPIGWRepository cria o repositório a partir do cliente AWS.
func NewAPIGWRepository(c *client.AWSClient, cfg *config.Config, log zerolog.Logger) *APIGWRepository {
	return &APIGWRepository{
		API:             c.APIGW,
		Log:             log.With().Str("component", "apigw").Logger(),
		ParamValidation: cfg.ParamValidation,
		Retry:           DefaultRetryPolicy,
	}
}

// invoke valida req, converte para a entrada do SDK, chama a API com retry
// em throttling e converte a saída para o resultado do modelo.
func invoke[Res any, Req model.Shape, In any, Out any](
	ctx context.Context,
	r *APIGWRepository,
	operation string,
	req Req,
	call func(context.Context, *In, ...func(*apigw.Options)) (*Out, error),
) (*Res, error) {
	if r.ParamValidation {
		if err := req.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", operation, err)
		}
	}

	in, err := convert[In](req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	r.Log.Debug().Str("operation", operation).Msg("calling api gateway")

	var out *Out
	optFns := r.Retry.sdkOptions()
	err = retry(ctx, r.Retry, IsThrottled, func() error {
		var cerr error
		out, cerr = call(ctx, in, optFns...)
		return translateError(cerr)
	})
	if err != nil {
		r.Log.Debug().Err(err).Str("operation", operation).Msg("api gateway call failed")
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	res, err := convert[Res](out)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return res, nil
}

// invokeNoResult é invoke para operações sem shape de saída.
func invokeNoResult[Req model.Shape, In any, Out any](
	ctx context.Context,
	r *APIGWRepository,
	operation string,
	req Req,
	call func(context.Context, *In, ...func(*apigw.Options)) (*Out, error),
) error {
	_, err := invoke[struct{}](ctx, r, operation, req, call)
	return err
}
