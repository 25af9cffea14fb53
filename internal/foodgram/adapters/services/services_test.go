package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"foodgram/internal/foodgram/adapters/services"
	domainservices "foodgram/internal/foodgram/domain/services"
)

const testSecret = "test-secret"

func TestBcrypt_HashAndVerify(t *testing.T) {
	ctx := context.Background()
	service := services.NewBcrypt(bcrypt.MinCost)

	hash, err := service.Hash(ctx, "secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	ok, err := service.Verify(ctx, "secret123", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = service.Verify(ctx, "wrong123", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcrypt_EmptyInput(t *testing.T) {
	ctx := context.Background()
	service := services.NewBcrypt(bcrypt.MinCost)

	_, err := service.Hash(ctx, "")
	assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)

	_, err = service.Verify(ctx, "", "hash")
	assert.ErrorIs(t, err, domainservices.ErrInvalidPassword)
}

func TestBcrypt_SaltedHashes(t *testing.T) {
	ctx := context.Background()
	service := services.NewBcrypt(bcrypt.MinCost)

	first, err := service.Hash(ctx, "secret123")
	require.NoError(t, err)
	second, err := service.Hash(ctx, "secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcrypt_InvalidCostFallsBackToDefault(t *testing.T) {
	service := services.NewBcrypt(100)

	hash, err := service.Hash(context.Background(), "secret123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	ctx := context.Background()
	service := services.NewJWT(testSecret, time.Hour)

	token, err := service.GenerateAccessToken(ctx, 42, "chef")
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.NotEmpty(t, token.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, 5*time.Second)

	claims, err := service.ValidateAccessToken(ctx, token.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "chef", claims.Username)
	assert.Equal(t, token.ID, claims.ID)
}

func TestJWT_UniqueTokenIDs(t *testing.T) {
	ctx := context.Background()
	service := services.NewJWT(testSecret, time.Hour)

	first, err := service.GenerateAccessToken(ctx, 1, "a")
	require.NoError(t, err)
	second, err := service.GenerateAccessToken(ctx, 1, "a")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestJWT_EmptySecret(t *testing.T) {
	_, err := services.NewJWT("", time.Hour).GenerateAccessToken(context.Background(), 1, "a")
	assert.ErrorIs(t, err, domainservices.ErrGeneratingJWTToken)
}

func TestJWT_Expired(t *testing.T) {
	ctx := context.Background()
	service := services.NewJWT(testSecret, -time.Minute)

	token, err := service.GenerateAccessToken(ctx, 1, "a")
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(ctx, token.Token)
	assert.ErrorIs(t, err, domainservices.ErrExpiredJWTToken)
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := services.NewJWT("other", time.Hour).GenerateAccessToken(ctx, 1, "a")
	require.NoError(t, err)

	_, err = services.NewJWT(testSecret, time.Hour).ValidateAccessToken(ctx, token.Token)
	assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken)
}

func TestJWT_RejectsOtherAlgorithms(t *testing.T) {
	claims := services.Claims{
		UserID: 1,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "id",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = services.NewJWT(testSecret, time.Hour).ValidateAccessToken(context.Background(), unsigned)
	assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken)
}

func TestJWT_MissingClaims(t *testing.T) {
	claims := services.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = services.NewJWT(testSecret, time.Hour).ValidateAccessToken(context.Background(), signed)
	assert.ErrorIs(t, err, domainservices.ErrInvalidJWTToken)
}

func TestServiceFactory(t *testing.T) {
	factory := services.NewServiceFactory(testSecret, time.Hour, bcrypt.MinCost)

	assert.NotNil(t, factory.PasswordService())
	assert.NotNil(t, factory.TokenService())
}
