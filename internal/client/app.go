package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-param-auth/internal/adapter"
	"github.com/MKhiriev/go-param-auth/internal/config"
	"github.com/MKhiriev/go-param-auth/internal/logger"
	"github.com/MKhiriev/go-param-auth/internal/workers"
	"github.com/MKhiriev/go-param-auth/models"
)

const (
	num1 = 5.0
	num2 = 10.0
)

type App struct {
	adapter     adapter.ServerAdapter
	credentials config.Auth
	tour        *workers.Workers

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, credentials config.Auth, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil {
		return nil, errors.New("server adapter is required")
	}
	if len(credentials.APIKeys) == 0 {
		return nil, errors.New("at least one api key is required")
	}

	app := &App{
		adapter:     serverAdapter,
		credentials: credentials,
		logger:      logger,
	}
	app.tour = workers.New(logger, app.steps()...)

	return app, nil
}

// Run performs the tour and stops at the first failed step.
func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Int("steps", a.tour.Len()).Msg("starting tour")

	if err := a.tour.Run(ctx); err != nil {
		return fmt.Errorf("tour stopped: %w", err)
	}

	a.logger.Info().Msg("tour finished")
	return nil
}

func (a *App) steps() []workers.Worker {
	return []workers.Worker{
		workers.NewFunc("version", a.version),
		workers.NewFunc("index", a.index),
		workers.NewFunc("sum query", a.sumQuery),
		workers.NewFunc("sum body", a.sumBody),
		workers.NewFunc("sum header", a.sumHeader),
		workers.NewFunc("api key header", a.apiKeyHeader),
		workers.NewFunc("api key query", a.apiKeyQuery),
		workers.NewFunc("bearer static token", a.bearerStatic),
		workers.NewFunc("basic", a.basic),
		workers.NewFunc("bearer issued token", a.bearerIssued),
		workers.NewFunc("combined", a.combined),
		workers.NewFunc("wrong api key", a.wrongAPIKey),
		workers.NewFunc("wrong basic password", a.wrongBasicPassword),
	}
}

func (a *App) version(ctx context.Context) error {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		return err
	}
	a.logger.Info().Str("version", version).Msg("server version")
	return nil
}

func (a *App) index(ctx context.Context) error {
	index, err := a.adapter.Index(ctx)
	if err != nil {
		return err
	}
	a.logger.Info().Str("message", index.Message).Any("endpoints", index.Endpoints).Msg("index")
	return nil
}

func (a *App) sumQuery(ctx context.Context) error {
	resp, err := a.adapter.SumQuery(ctx, num1, num2)
	if err != nil {
		return err
	}
	return a.checkSum(resp.Result, resp.Method)
}

func (a *App) sumBody(ctx context.Context) error {
	resp, err := a.adapter.SumBody(ctx, models.NewSumRequest(num1, num2))
	if err != nil {
		return err
	}
	return a.checkSum(resp.Result, resp.Method)
}

func (a *App) sumHeader(ctx context.Context) error {
	resp, err := a.adapter.SumHeader(ctx, num1, num2)
	if err != nil {
		return err
	}
	return a.checkSum(resp.Result, resp.Method)
}

func (a *App) apiKeyHeader(ctx context.Context) error {
	resp, err := a.adapter.AuthAPIKeyHeader(ctx, a.credentials.APIKeys[0], num1, num2)
	if err != nil {
		return err
	}
	return a.checkAuth(resp)
}

func (a *App) apiKeyQuery(ctx context.Context) error {
	resp, err := a.adapter.AuthAPIKeyQuery(ctx, a.credentials.APIKeys[0], num1, num2)
	if err != nil {
		return err
	}
	return a.checkAuth(resp)
}

func (a *App) bearerStatic(ctx context.Context) error {
	resp, err := a.adapter.AuthBearer(ctx, a.credentials.BearerToken, models.NewSumRequest(num1, num2))
	if err != nil {
		return err
	}
	return a.checkAuth(resp)
}

func (a *App) basic(ctx context.Context) error {
	resp, err := a.adapter.AuthBasic(ctx, a.credentials.BasicUsername, a.credentials.BasicPassword, models.NewSumRequest(num1, num2))
	if err != nil {
		return err
	}
	return a.checkAuth(resp)
}

func (a *App) bearerIssued(ctx context.Context) error {
	token, err := a.adapter.IssueToken(ctx, a.credentials.BasicUsername, a.credentials.BasicPassword)
	if err != nil {
		return err
	}
	a.logger.Info().Str("token_type", token.TokenType).Int64("expires_in", token.ExpiresIn).Msg("token issued")

	resp, err := a.adapter.AuthBearer(ctx, token.AccessToken, models.NewSumRequest(num1, num2))
	if err != nil {
		return err
	}
	return a.checkAuth(resp)
}

func (a *App) combined(ctx context.Context) error {
	multiplier := 2.0
	resp, err := a.adapter.CombinedAllMethods(ctx, a.credentials.APIKeys[0], models.NewSumRequest(num1, num2),
		models.CombinedOptions{Multiplier: &multiplier, Operation: "sum"})
	if err != nil {
		return err
	}

	a.logger.Info().Any("response", resp).Msg("combined")
	if want := (num1 + num2) * multiplier; resp.Result != want || !resp.Authenticated {
		return fmt.Errorf("%w: got %v, want %v", ErrUnexpectedResult, resp.Result, want)
	}
	return nil
}

func (a *App) wrongAPIKey(ctx context.Context) error {
	_, err := a.adapter.AuthAPIKeyHeader(ctx, "wrong-"+a.credentials.APIKeys[0], num1, num2)
	return a.expectUnauthorized(err)
}

func (a *App) wrongBasicPassword(ctx context.Context) error {
	_, err := a.adapter.AuthBasic(ctx, a.credentials.BasicUsername, "wrong-"+a.credentials.BasicPassword, models.NewSumRequest(num1, num2))
	return a.expectUnauthorized(err)
}

func (a *App) checkSum(result float64, method string) error {
	a.logger.Info().Float64("result", result).Str("method", method).Msg("sum")
	if result != num1+num2 {
		return fmt.Errorf("%w: got %v, want %v", ErrUnexpectedResult, result, num1+num2)
	}
	return nil
}

func (a *App) checkAuth(resp models.AuthResponse) error {
	a.logger.Info().Any("response", resp).Msg("authenticated sum")
	if resp.Result != num1+num2 || !resp.Authenticated {
		return fmt.Errorf("%w: %+v", ErrUnexpectedResult, resp)
	}
	return nil
}

func (a *App) expectUnauthorized(err error) error {
	if err == nil {
		return ErrRejectionExpected
	}
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}
	a.logger.Info().Err(err).Msg("rejected as expected")
	return nil
}
