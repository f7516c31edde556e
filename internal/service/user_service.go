package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/plantnet/marketplace/internal/cache"
	"github.com/plantnet/marketplace/internal/domain"
	"github.com/plantnet/marketplace/internal/events"
	"github.com/plantnet/marketplace/internal/repository"
	apperrors "github.com/plantnet/marketplace/pkg/util"
)

// UserService is the user directory: first-contact registration, seller upgrades and roles.
type UserService struct {
	users      repository.UserRepository
	roles      cache.RoleCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// UserDependencies encapsulates requirements for the user service. Roles and Dispatcher are
// optional.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	Roles      cache.RoleCache
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewUserService builds the service.
func NewUserService(deps UserDependencies) *UserService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		users:      deps.UserRepo,
		roles:      deps.Roles,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		now:        time.Now,
	}
}

// UpsertIfAbsent returns the stored user when email is known. Otherwise it stores payload as a
// customer and returns payload as submitted. created reports whether a write happened.
func (s *UserService) UpsertIfAbsent(ctx context.Context, email string, payload domain.User) (user *domain.User, created bool, err error) {
	existing, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, err
	}

	submitted := payload
	submitted.Email = email

	record := submitted
	record.Role = domain.RoleCustomer
	record.Timestamp = s.now().UnixMilli()
	if err := s.users.Insert(ctx, &record); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// lost a race with a concurrent first contact
			existing, getErr := s.users.GetByEmail(ctx, email)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	s.publish(ctx, events.New(events.EventUserCreated, email, email, nil))
	return &submitted, true, nil
}

// RequestUpgrade marks the user as waiting for seller approval.
func (s *UserService) RequestUpgrade(ctx context.Context, email string) (*mongo.UpdateResult, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewDomainError("INVALID_STATE", "user not found", http.StatusBadRequest, nil)
	}
	if err != nil {
		return nil, err
	}
	if user.Status == domain.UserStatusRequested {
		return nil, apperrors.NewConflict("You have already requested, wait for some time.", nil)
	}

	res, err := s.users.SetStatus(ctx, email, domain.UserStatusRequested)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.New(events.EventSellerUpgradeRequested, email, email, nil))
	return res, nil
}

// GetRole returns the stored role, or an empty role when the email is unknown.
func (s *UserService) GetRole(ctx context.Context, email string) (domain.Role, error) {
	fill := false
	var version int64
	if s.roles != nil {
		role, ok, err := s.roles.Get(ctx, email)
		if err != nil {
			s.logger.Warn("role cache read failed", zap.String("email", email), zap.Error(err))
		} else if ok {
			return role, nil
		}
		// must be read before the user so that a concurrent SetRole voids the fill
		if version, err = s.roles.Version(ctx, email); err != nil {
			s.logger.Warn("role cache version read failed", zap.String("email", email), zap.Error(err))
		} else {
			fill = true
		}
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	if fill && user.Role != "" {
		if _, err := s.roles.SetIfVersion(ctx, email, user.Role, version); err != nil {
			s.logger.Warn("role cache write failed", zap.String("email", email), zap.Error(err))
		}
	}
	return user.Role, nil
}

// ListAllExcept lists every user but the caller.
func (s *UserService) ListAllExcept(ctx context.Context, email string) ([]domain.User, error) {
	return s.users.ListExcept(ctx, email)
}

// SetRole assigns role and marks the user Verified, clearing any pending request.
func (s *UserService) SetRole(ctx context.Context, actor, email string, role domain.Role) (*mongo.UpdateResult, error) {
	if !role.Valid() {
		return nil, apperrors.NewValidationError("unknown role", map[string]any{"role": role})
	}
	existing, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewNotFound("user", map[string]any{"email": email})
	}
	if err != nil {
		return nil, err
	}

	res, err := s.users.SetRole(ctx, email, role, domain.UserStatusVerified)
	if err != nil {
		return nil, err
	}
	if s.roles != nil {
		if err := s.roles.Invalidate(ctx, email); err != nil {
			s.logger.Warn("role cache invalidation failed", zap.String("email", email), zap.Error(err))
		}
	}
	s.publish(ctx, events.New(events.EventUserRoleChanged, email, actor, events.RoleChangedPayload{
		OldRole: string(existing.Role),
		NewRole: string(role),
	}))
	return res, nil
}

func (s *UserService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}
