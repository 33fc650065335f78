package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	lambdatypes "github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/rs/zerolog"

	dto "github.com/raywall/apigateway-kit/pkg/types"
)

// LambdaAPI é o subconjunto do cliente Lambda usado pelo repositório.
type LambdaAPI interface {
	GetFunction(ctx context.Context, params *lambda.GetFunctionInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionOutput, error)
	GetFunctionConfiguration(ctx context.Context, params *lambda.GetFunctionConfigurationInput, optFns ...func(*lambda.Options)) (*lambda.GetFunctionConfigurationOutput, error)
	CreateFunction(ctx context.Context, params *lambda.CreateFunctionInput, optFns ...func(*lambda.Options)) (*lambda.CreateFunctionOutput, error)
	UpdateFunctionConfiguration(ctx context.Context, params *lambda.UpdateFunctionConfigurationInput, optFns ...func(*lambda.Options)) (*lambda.UpdateFunctionConfigurationOutput, error)
	UpdateFunctionCode(ctx context.Context, params *lambda.UpdateFunctionCodeInput, optFns ...func(*lambda.Options)) (*lambda.UpdateFunctionCodeOutput, error)
	AddPermission(ctx context.Context, params *lambda.AddPermissionInput, optFns ...func(*lambda.Options)) (*lambda.AddPermissionOutput, error)
	RemovePermission(ctx context.Context, params *lambda.RemovePermissionInput, optFns ...func(*lambda.Options)) (*lambda.RemovePermissionOutput, error)
	DeleteFunction(ctx context.Context, params *lambda.DeleteFunctionInput, optFns ...func(*lambda.Options)) (*lambda.DeleteFunctionOutput, error)
}

// LambdaRepository encapsula operações CRUD da AWS Lambda.
type LambdaRepository struct {
	API   LambdaAPI
	Log   zerolog.Logger
	Retry RetryPolicy

	// ActiveTimeout limita a espera pelo estado Active após updates.
	ActiveTimeout time.Duration
}

// PermissionStatementID identifica a permissão concedida a uma API.
func PermissionStatementID(apiID string) string {
	return fmt.Sprintf("apigateway-%s", apiID)
}

// GetFunction busca uma função Lambda. Retorna nil se não for encontrada.
func (r *LambdaRepository) GetFunction(ctx context.Context, functionName string) (*lambdatypes.FunctionConfiguration, error) {
	out, err := r.API.GetFunction(ctx, &lambda.GetFunctionInput{FunctionName: aws.String(functionName)})
	if err != nil {
		if isAPIErrorCode(err, "ResourceNotFoundException") {
			return nil, nil
		}
		return nil, fmt.Errorf("GetFunction failed: %w", err)
	}
	return out.Configuration, nil
}

// EnsureFunction cria ou atualiza a função Lambda e retorna seu ARN.
func (r *LambdaRepository) EnsureFunction(ctx context.Context, lc *dto.LambdaConfig, roleArn string) (string, error) {
	bs, err := os.ReadFile(lc.ZipPath)
	if err != nil {
		return "", fmt.Errorf("reading zip file: %w", err)
	}
	rt := mapRuntime(lc.Runtime)

	got, err := r.GetFunction(ctx, lc.FunctionName)
	if err != nil {
		return "", err
	}

	if got != nil {
		r.Log.Debug().Str("function", lc.FunctionName).Msg("updating lambda function")
		if err := r.updateFunctionConfiguration(ctx, lc, roleArn, rt); err != nil {
			return "", err
		}
		if err := r.waitForActive(ctx, lc.FunctionName); err != nil {
			return "", err
		}
		if err := r.updateFunctionCode(ctx, lc.FunctionName, bs); err != nil {
			return "", err
		}
		if err := r.waitForActive(ctx, lc.FunctionName); err != nil {
			return "", err
		}
		return aws.ToString(got.FunctionArn), nil
	}

	r.Log.Debug().Str("function", lc.FunctionName).Msg("creating lambda function")
	var result *lambda.CreateFunctionOutput
	// A role recém-criada pode ainda não ser assumível pela Lambda.
	cerr := retry(ctx, r.Retry, isRoleNotReady, func() error {
		var err error
		result, err = r.API.CreateFunction(ctx, &lambda.CreateFunctionInput{
			FunctionName: aws.String(lc.FunctionName),
			Role:         aws.String(roleArn),
			Handler:      aws.String(lc.Handler),
			Runtime:      rt,
			Code:         &lambdatypes.FunctionCode{ZipFile: bs},
			MemorySize:   aws.Int32(lc.MemorySize),
			Timeout:      aws.Int32(lc.Timeout),
			Environment:  &lambdatypes.Environment{Variables: lc.Environment},
		})
		return err
	})
	if cerr != nil {
		if isAPIErrorCode(cerr, "ResourceConflictException") {
			if g2, _ := r.GetFunction(ctx, lc.FunctionName); g2 != nil {
				return aws.ToString(g2.FunctionArn), nil
			}
		}
		return "", fmt.Errorf("CreateFunction failed: %w", cerr)
	}

	if result == nil || result.FunctionArn == nil {
		return "", fmt.Errorf("lambda created but ARN not available")
	}
	if err := r.waitForActive(ctx, lc.FunctionName); err != nil {
		return "", err
	}
	return aws.ToString(result.FunctionArn), nil
}

// AddPermission permite que a API invoque a função.
func (r *LambdaRepository) AddPermission(ctx context.Context, functionName, apiID, sourceArn string) error {
	_, err := r.API.AddPermission(ctx, &lambda.AddPermissionInput{
		FunctionName: aws.String(functionName),
		StatementId:  aws.String(PermissionStatementID(apiID)),
		Action:       aws.String("lambda:InvokeFunction"),
		Principal:    aws.String("apigateway.amazonaws.com"),
		SourceArn:    aws.String(sourceArn),
	})
	if err != nil && !isAPIErrorCode(err, "ResourceConflictException") {
		return fmt.Errorf("AddPermission failed: %w", err)
	}
	return nil
}

// RemovePermission remove a permissão concedida por AddPermission.
func (r *LambdaRepository) RemovePermission(ctx context.Context, functionName, apiID string) error {
	_, err := r.API.RemovePermission(ctx, &lambda.RemovePermissionInput{
		FunctionName: aws.String(functionName),
		StatementId:  aws.String(PermissionStatementID(apiID)),
	})
	if err != nil && !isAPIErrorCode(err, "ResourceNotFoundException") {
		return fmt.Errorf("RemovePermission failed: %w", err)
	}
	return nil
}

// DeleteFunction deleta a Lambda.
func (r *LambdaRepository) DeleteFunction(ctx context.Context, functionName string) error {
	_, err := r.API.DeleteFunction(ctx, &lambda.DeleteFunctionInput{
		FunctionName: aws.String(functionName),
	})
	if err != nil && !isAPIErrorCode(err, "ResourceNotFoundException") {
		return fmt.Errorf("DeleteFunction failed: %w", err)
	}
	return nil
}

// --- Métodos Privados ---

func (r *LambdaRepository) updateFunctionConfiguration(ctx context.Context, lc *dto.LambdaConfig, roleArn string, rt lambdatypes.Runtime) error {
	_, err := r.API.UpdateFunctionConfiguration(ctx, &lambda.UpdateFunctionConfigurationInput{
		FunctionName: aws.String(lc.FunctionName),
		Role:         aws.String(roleArn),
		Handler:      aws.String(lc.Handler),
		Runtime:      rt,
		MemorySize:   aws.Int32(lc.MemorySize),
		Timeout:      aws.Int32(lc.Timeout),
		Environment:  &lambdatypes.Environment{Variables: lc.Environment},
	})
	if err != nil {
		return fmt.Errorf("failed to update lambda configuration: %w", err)
	}
	return nil
}

func (r *LambdaRepository) updateFunctionCode(ctx context.Context, functionName string, bs []byte) error {
	_, err := r.API.UpdateFunctionCode(ctx, &lambda.UpdateFunctionCodeInput{
		FunctionName: aws.String(functionName),
		ZipFile:      bs,
	})
	if err != nil {
		return fmt.Errorf("failed to update lambda code: %w", err)
	}
	return nil
}

// waitForActive consulta a função até o último update terminar.
func (r *LambdaRepository) waitForActive(ctx context.Context, functionName string) error {
	timeout := r.ActiveTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	policy := r.Retry
	policy.MaxRetries = 1 << 16
	err := retry(ctx, policy, func(err error) bool { return errors.Is(err, errFunctionPending) }, func() error {
		cfg, err := r.API.GetFunctionConfiguration(ctx, &lambda.GetFunctionConfigurationInput{FunctionName: aws.String(functionName)})
		if err != nil {
			return err
		}
		switch {
		case cfg.State == lambdatypes.StateFailed:
			return fmt.Errorf("function %s failed: %s", functionName, aws.ToString(cfg.StateReason))
		case cfg.State == lambdatypes.StatePending, cfg.LastUpdateStatus == lambdatypes.LastUpdateStatusInProgress:
			return errFunctionPending
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("waiting for function %s: %w", functionName, err)
	}
	return nil
}

var errFunctionPending = errors.New("function update in progress")

func isRoleNotReady(err error) bool {
	return isAPIErrorCode(err, "InvalidParameterValueException") &&
		strings.Contains(err.Error(), "cannot be assumed")
}

func mapRuntime(runtime string) lambdatypes.Runtime {
	switch strings.ToLower(strings.TrimSpace(runtime)) {
	case "provided.al2", "providedal2":
		return lambdatypes.RuntimeProvidedal2
	case "provided.al2023", "providedal2023":
		return lambdatypes.RuntimeProvidedal2023
	case "python3.12":
		return lambdatypes.RuntimePython312
	case "nodejs20.x":
		return lambdatypes.RuntimeNodejs20x
	default:
		return lambdatypes.Runtime(runtime)
	}
}
