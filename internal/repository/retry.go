package repository

import (
	"context"
	"time"

	apigw "github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/cenkalti/backoff/v4"
)

// RetryPolicy configura o backoff exponencial das chamadas remotas.
// MaxRetries zero executa a chamada uma única vez.
type RetryPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxRetries      uint64
}

// DefaultRetryPolicy cobre throttling e a consistência eventual do API Gateway.
// Com MaxRetries > 0 o retryer padrão do SDK fica limitado a uma tentativa por
// chamada, então cada chamada faz no máximo MaxRetries+1 requisições.
var DefaultRetryPolicy = RetryPolicy{
	InitialInterval: 300 * time.Millisecond,
	MaxInterval:     5 * time.Second,
	MaxRetries:      5,
}

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}
	b.MaxElapsedTime = 0
	return backoff.WithContext(backoff.WithMaxRetries(b, p.MaxRetries), ctx)
}

// sdkOptions desliga as retentativas do SDK quando a política já retenta.
func (p RetryPolicy) sdkOptions() []func(*apigw.Options) {
	if p.MaxRetries == 0 {
		return nil
	}
	return []func(*apigw.Options){func(o *apigw.Options) { o.RetryMaxAttempts = 1 }}
}

// retry executa fn até que tenha sucesso, retorne um erro que retryable
// rejeite, ou a política se esgote. O último erro de fn é devolvido.
func retry(ctx context.Context, p RetryPolicy, retryable func(error) bool, fn func() error) error {
	return backoff.Retry(func() error {
		err := fn()
		if err != nil && !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}, p.backOff(ctx))
}
