package auth

import (
	"testing"

	"github.com/suritel/worklog-api/internal/config"
	"github.com/suritel/worklog-api/internal/constant"
)

// Perform token generation and verify the generated tokens to ensure
// VerifyJwtToken round trips the payload.
func TestJWT(t *testing.T) {
	cfg := config.AuthConfig{JWT_SECRET: "test-secret"}

	jwtService := NewJwt(cfg, nil)
	payload := JWTPayload{
		UserID: 42,
		Email:  "engineer@example.com",
		Name:   "김엔지니어",
		Role:   constant.UserRoleEngineer,
	}

	refreshToken, accessToken, err := jwtService.GenerateRefreshAndAccessToken(payload)
	if err != nil {
		t.Fatalf("An error occurred during refresh token and access token generation. Error: %v", err)
	}

	refreshClaims, err := jwtService.VerifyJwtToken(*refreshToken)
	if err != nil {
		t.Fatalf("An error occurred during refresh token verification. Error: %v", err)
	}
	if refreshClaims.Type != constant.JWT_TYPE_REFRESH {
		t.Errorf("Refresh token type = %s, want %s", refreshClaims.Type, constant.JWT_TYPE_REFRESH)
	}

	accessClaims, err := jwtService.VerifyJwtToken(*accessToken)
	if err != nil {
		t.Fatalf("An error occurred during access token verification. Error: %v", err)
	}
	if accessClaims.Type != constant.JWT_TYPE_ACCESS {
		t.Errorf("Access token type = %s, want %s", accessClaims.Type, constant.JWT_TYPE_ACCESS)
	}

	if accessClaims.User != payload {
		t.Errorf("Access token payload = %+v, want %+v", accessClaims.User, payload)
	}
}

func TestVerifyJwtTokenWrongSecret(t *testing.T) {
	issuer := NewJwt(config.AuthConfig{JWT_SECRET: "secret-a"}, nil)
	verifier := NewJwt(config.AuthConfig{JWT_SECRET: "secret-b"}, nil)

	_, accessToken, err := issuer.GenerateRefreshAndAccessToken(JWTPayload{UserID: 1})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := verifier.VerifyJwtToken(*accessToken); err == nil {
		t.Error("expected verification to fail with a different secret")
	}
}
