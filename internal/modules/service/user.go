package service

import (
	"context"
	"errors"
	"time"

	"github.com/barchasb-io/barchasb/internal/modules/model"
	"github.com/barchasb-io/barchasb/internal/modules/repo"
	"github.com/barchasb-io/barchasb/internal/pkg/auth"
	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const leaderboardCacheKey = "barchasb:leaderboard"

type UserService interface {
	Create(ctx context.Context, name, password string, points int) (*model.User, error)
	Login(ctx context.Context, name, password string) (*model.User, string, error)
	Logout(ctx context.Context, userID uuid.UUID) (string, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Rename(ctx context.Context, id uuid.UUID, newName string) (*model.User, error)
	ChangePassword(ctx context.Context, id uuid.UUID, newPassword string) (*model.User, error)
	Leaderboard(ctx context.Context) ([]model.User, error)
}

type userService struct {
	r        repo.UserRepo
	hasher   *auth.Hasher
	tokens   *auth.TokenManager
	rdb      *redis.Client
	cacheTTL time.Duration
	log      *zap.Logger
}

func NewUserService(r repo.UserRepo, hasher *auth.Hasher, tokens *auth.TokenManager, rdb *redis.Client, cacheTTL time.Duration, log *zap.Logger) UserService {
	return &userService{
		r:        r,
		hasher:   hasher,
		tokens:   tokens,
		rdb:      rdb,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// Create stores a new user with only the password hash. Name collisions are
// detected from the unique-constraint violation, never a pre-check.
func (s *userService) Create(ctx context.Context, name, password string, points int) (*model.User, error) {
	hash, err := s.hasher.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := model.User{Name: name, Password: hash, Points: points}
	if err := s.r.Create(ctx, &u); err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

// Login verifies the credentials and issues an access token carrying the
// user's identifier. Missing user and hash mismatch are indistinguishable
// to the caller.
func (s *userService) Login(ctx context.Context, name, password string) (*model.User, string, error) {
	u, err := s.r.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", translate(err)
	}
	if !s.hasher.CheckPassword(u.Password, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.IssueForUser(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Logout has no server-side state to clear; it hands back a pre-expired
// token for the client to store in place of the live one.
func (s *userService) Logout(ctx context.Context, userID uuid.UUID) (string, error) {
	return s.tokens.IssueExpired(userID)
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	u, err := s.r.GetByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func (s *userService) Rename(ctx context.Context, id uuid.UUID, newName string) (*model.User, error) {
	if err := s.r.UpdateName(ctx, id, newName); err != nil {
		return nil, translate(err)
	}
	return s.GetByID(ctx, id)
}

func (s *userService) ChangePassword(ctx context.Context, id uuid.UUID, newPassword string) (*model.User, error) {
	hash, err := s.hasher.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}
	if err := s.r.UpdatePassword(ctx, id, hash); err != nil {
		return nil, translate(err)
	}
	return s.GetByID(ctx, id)
}

// Leaderboard returns all users ordered by points descending. Results are
// served from a short-lived redis cache when a client is configured; a nil
// client or any cache error falls through to the database.
func (s *userService) Leaderboard(ctx context.Context) ([]model.User, error) {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, leaderboardCacheKey).Bytes(); err == nil {
			var cached []model.User
			if err := sonic.Unmarshal(raw, &cached); err == nil {
				return cached, nil
			}
		}
	}

	users, err := s.r.ListByPointsDesc(ctx)
	if err != nil {
		return nil, translate(err)
	}

	if s.rdb != nil {
		if raw, err := sonic.Marshal(users); err == nil {
			if err := s.rdb.Set(ctx, leaderboardCacheKey, raw, s.cacheTTL).Err(); err != nil {
				s.log.Sugar().Warnw("leaderboard cache write failed", "err", err)
			}
		}
	}
	return users, nil
}
