package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "fitlog/internal/delivery/context"
	"fitlog/internal/domain/constants"
	"fitlog/internal/domain/entity"
	domainerrors "fitlog/internal/domain/errors"
	"fitlog/internal/domain/repository"
	"fitlog/internal/domain/service"
	"fitlog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPassword is hashed once and compared against on unknown usernames,
// so both login failure paths pay for one bcrypt comparison.
const dummyPassword = "fitlog-dummy-password"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	activity     activityRecorder
	dummyHash    func() (string, error)
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo       repository.UserRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	hasher := params.Hasher

	return &authService{
		userRepo:     params.UserRepo,
		hasher:       hasher,
		tokenService: params.TokenService,
		activity:     newActivityRecorder(params.EventPublisher),
		dummyHash: sync.OnceValues(func() (string, error) {
			return hasher.Hash(dummyPassword)
		}),
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password and stores a new user.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	logger := srv.log(ctx)
	logger.Info("Starting registration", slog.String("username", input.Username))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrUsernameTaken) {
			logger.Info("Registration rejected, username taken", slog.String("username", input.Username))
		}

		return nil, err
	}

	logger.Info("User registered", slog.Int64("user_id", user.ID))
	srv.activity.record(ctx, logger, constants.EventUserRegistered, user.ID, user.ID)

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies credentials and issues an access token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	logger := srv.log(ctx)

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to find user")
		}

		if hash, hashErr := srv.dummyHash(); hashErr == nil {
			srv.hasher.Check(input.Password, hash)
		}
		logger.Info("Login failed", slog.String("reason", "unknown user"))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		logger.Info("Login failed", slog.String("reason", "password mismatch"), slog.Int64("user_id", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.Username, user.ID, srv.tokenService.AccessTTL())
	if err != nil {
		logger.Error("Failed to issue access token", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	logger.Info("Login succeeded", slog.Int64("user_id", user.ID))

	return &usecase.LoginOutput{
		AccessToken: token,
		TokenType:   usecase.TokenTypeBearer,
	}, nil
}
