package auth

import (
	"context"
	"errors"

	"homeo-service/internal/app/contracts"
	"homeo-service/internal/pkg/constvars"
	"homeo-service/internal/pkg/dto/requests"
	"homeo-service/internal/pkg/dto/responses"
	"homeo-service/internal/pkg/exceptions"
	"homeo-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type authService struct {
	HTTPClient contracts.HTTPClient
	Log        *zap.Logger
}

func NewAuthService(httpClient contracts.HTTPClient, logger *zap.Logger) contracts.AuthService {
	return &authService{
		HTTPClient: httpClient,
		Log:        logger,
	}
}

func (s *authService) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("authService.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeLoginRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		s.Log.Error("authService.Login error validating request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	result, err := s.HTTPClient.Post(ctx, constvars.ResourceAuth+constvars.PathLogin, request)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, exceptions.ErrDecodeResponse(errors.New("empty login response"), "login")
	}

	login, err := decodeLogin(result.Raw)
	if err != nil {
		return nil, err
	}

	s.Log.Info("authService.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return login, nil
}

func (s *authService) Me(ctx context.Context) (map[string]any, error) {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("authService.Me called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	result, err := s.HTTPClient.Get(ctx, constvars.ResourceAuth+constvars.PathMe, nil)
	if err != nil {
		return nil, err
	}

	profile := make(map[string]any)
	if err := result.Decode(&profile); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "profile")
	}
	return profile, nil
}

// decodeLogin accepts {"token": ...}, {"accessToken": ...} and either wrapped in "data".
func decodeLogin(raw []byte) (*responses.Login, error) {
	var body struct {
		responses.Login
		AccessToken string           `json:"accessToken"`
		Data        *json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, "login")
	}
	if body.Token == "" && body.AccessToken == "" && body.Data != nil {
		return decodeLogin(*body.Data)
	}

	login := body.Login
	if login.Token == "" {
		login.Token = body.AccessToken
	}
	if login.Token == "" {
		return nil, exceptions.ErrDecodeResponse(errors.New("login response carries no token"), "login")
	}
	return &login, nil
}
