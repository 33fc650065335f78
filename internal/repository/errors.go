package repository

import (
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/aws/smithy-go"

	"github.com/raywall/apigateway-kit/pkg/model"
)

// ErrUnsupportedOperation é retornado por Invoke para operações modeladas
// que o repositório não expõe.
var ErrUnsupportedOperation = errors.New("operation not bound to the sdk")

// translateError converte falhas do serviço nas exceções do modelo. Erros que
// não vêm da API (rede, credenciais, contexto) são devolvidos como estão.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	msg := aws.String(apiErr.ErrorMessage())
	switch apiErr.ErrorCode() {
	case "BadRequestException":
		return &model.BadRequestException{Message: msg}
	case "ConflictException":
		return &model.ConflictException{Message: msg}
	case "NotFoundException":
		return &model.NotFoundException{Message: msg}
	case "UnauthorizedException":
		return &model.UnauthorizedException{Message: msg}
	case "LimitExceededException":
		out := &model.LimitExceededException{Message: msg}
		var sdkErr *apigwtypes.LimitExceededException
		if errors.As(err, &sdkErr) {
			out.RetryAfterSeconds = sdkErr.RetryAfterSeconds
		}
		return out
	case "TooManyRequestsException":
		out := &model.TooManyRequestsException{Message: msg}
		var sdkErr *apigwtypes.TooManyRequestsException
		if errors.As(err, &sdkErr) {
			out.RetryAfterSeconds = sdkErr.RetryAfterSeconds
		}
		return out
	case "ServiceUnavailableException":
		out := &model.ServiceUnavailableException{Message: msg}
		var sdkErr *apigwtypes.ServiceUnavailableException
		if errors.As(err, &sdkErr) {
			out.RetryAfterSeconds = sdkErr.RetryAfterSeconds
		}
		return out
	}
	return err
}

// IsNotFound informa se err contém uma NotFoundException do serviço.
func IsNotFound(err error) bool {
	var nf *model.NotFoundException
	return errors.As(err, &nf)
}

// IsConflict informa se err contém uma ConflictException do serviço.
func IsConflict(err error) bool {
	var c *model.ConflictException
	return errors.As(err, &c)
}

// IsThrottled informa se err indica limite de taxa ou indisponibilidade
// temporária do serviço.
func IsThrottled(err error) bool {
	var (
		tooMany *model.TooManyRequestsException
		limit   *model.LimitExceededException
		unavail *model.ServiceUnavailableException
	)
	return errors.As(err, &tooMany) || errors.As(err, &limit) || errors.As(err, &unavail)
}

// isAPIErrorCode verifica o código de erro smithy APIError.
func isAPIErrorCode(err error, codes ...string) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	for _, code := range codes {
		if apiErr.ErrorCode() == code {
			return true
		}
	}
	return false
}
