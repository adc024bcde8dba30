package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"github.com/KagureMwangi/sous-chef-smart-cart/internal/dto"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/entity"
	"github.com/KagureMwangi/sous-chef-smart-cart/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo serves refresh-token lookups from a fixed map keyed by
// token hash and records the specifications it was queried with.
type fakeUserRepo struct {
	user        *entity.User
	tokenByHash map[string]*entity.UserRefreshToken

	refreshTokenSpecs []specification.Specification
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }
func (f *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return f.user, nil
}
func (f *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	return nil, nil
}
func (f *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}
func (f *fakeUserRepo) ActivateUser(ctx context.Context, userId uuid.UUID) error { return nil }
func (f *fakeUserRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return nil
}
func (f *fakeUserRepo) UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error {
	return nil
}
func (f *fakeUserRepo) CreateEmailVerificationToken(ctx context.Context, token *entity.EmailVerificationToken) error {
	return nil
}
func (f *fakeUserRepo) FindEmailVerificationToken(ctx context.Context, specs ...specification.Specification) (*entity.EmailVerificationToken, error) {
	return nil, nil
}
func (f *fakeUserRepo) DeleteEmailVerificationToken(ctx context.Context, id uuid.UUID) error {
	return nil
}
func (f *fakeUserRepo) CreatePasswordResetToken(ctx context.Context, token *entity.PasswordResetToken) error {
	return nil
}
func (f *fakeUserRepo) FindPasswordResetToken(ctx context.Context, specs ...specification.Specification) (*entity.PasswordResetToken, error) {
	return nil, nil
}
func (f *fakeUserRepo) MarkTokenUsed(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeUserRepo) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	return nil
}
func (f *fakeUserRepo) FindRefreshToken(ctx context.Context, specs ...specification.Specification) (*entity.UserRefreshToken, error) {
	f.refreshTokenSpecs = specs
	for _, spec := range specs {
		if byHash, ok := spec.(specification.ByTokenHash); ok {
			return f.tokenByHash[byHash.Hash], nil
		}
	}
	return nil, nil
}
func (f *fakeUserRepo) RevokeRefreshToken(ctx context.Context, tokenHash string) error { return nil }
func (f *fakeUserRepo) RevokeAllRefreshTokens(ctx context.Context, userId uuid.UUID) error {
	return nil
}

func sha256Hex(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func newAuthFixture(repo *fakeUserRepo) IAuthService {
	uow := &fakeUow{
		pantry:  &fakePantryRepo{},
		profile: &fakeProfileRepo{},
		users:   repo,
	}
	return NewAuthService(&fakeFactory{uow: uow}, nil, nil)
}

func TestRefreshTokenLooksUpHashedToken(t *testing.T) {
	raw := uuid.New().String()
	userId := uuid.New()

	repo := &fakeUserRepo{
		user: &entity.User{
			Id:       userId,
			Email:    "cook@example.com",
			FullName: "Test Cook",
			Status:   entity.UserStatusActive,
		},
		tokenByHash: map[string]*entity.UserRefreshToken{
			sha256Hex(raw): {
				Id:        uuid.New(),
				UserId:    userId,
				TokenHash: sha256Hex(raw),
				ExpiresAt: time.Now().Add(time.Hour),
			},
		},
	}
	svc := newAuthFixture(repo)

	resp, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: raw})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, raw, resp.RefreshToken)
	assert.Equal(t, userId, resp.User.Id)

	// The stored token is looked up by its SHA-256 hash, never by the raw
	// value handed to the client.
	require.Len(t, repo.refreshTokenSpecs, 1)
	byHash, ok := repo.refreshTokenSpecs[0].(specification.ByTokenHash)
	require.True(t, ok)
	assert.Equal(t, sha256Hex(raw), byHash.Hash)
}

func TestRefreshTokenRejectsUnknownToken(t *testing.T) {
	svc := newAuthFixture(&fakeUserRepo{tokenByHash: map[string]*entity.UserRefreshToken{}})

	_, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: "bogus"})
	assert.Error(t, err)
}

func TestRefreshTokenRejectsRevokedAndExpired(t *testing.T) {
	raw := uuid.New().String()
	userId := uuid.New()

	tests := []struct {
		name  string
		token *entity.UserRefreshToken
	}{
		{
			name: "revoked",
			token: &entity.UserRefreshToken{
				UserId:    userId,
				TokenHash: sha256Hex(raw),
				ExpiresAt: time.Now().Add(time.Hour),
				Revoked:   true,
			},
		},
		{
			name: "expired",
			token: &entity.UserRefreshToken{
				UserId:    userId,
				TokenHash: sha256Hex(raw),
				ExpiresAt: time.Now().Add(-time.Hour),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeUserRepo{
				user:        &entity.User{Id: userId, Status: entity.UserStatusActive},
				tokenByHash: map[string]*entity.UserRefreshToken{sha256Hex(raw): tt.token},
			}
			svc := newAuthFixture(repo)

			_, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: raw})
			assert.Error(t, err)
		})
	}
}
