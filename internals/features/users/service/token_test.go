package service

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	model "academyku_backend/internals/features/users/model"
)

func TestTokenPairRoundTrip(t *testing.T) {
	u := &model.UserModel{
		UserID:   uuid.New(),
		UserName: "Admin",
		UserRole: "admin",
	}
	now := time.Now()

	access, refresh, err := GenerateTokenPair(u, "access-secret", "refresh-secret", now)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("empty token returned")
	}
	if access == refresh {
		t.Error("access and refresh tokens must differ")
	}

	sub, err := ParseRefreshToken(refresh, "refresh-secret")
	if err != nil {
		t.Fatalf("ParseRefreshToken: %v", err)
	}
	if sub != u.UserID.String() {
		t.Errorf("sub = %q, want %q", sub, u.UserID.String())
	}
}

func TestParseRefreshTokenRejections(t *testing.T) {
	u := &model.UserModel{UserID: uuid.New(), UserRole: "staff"}
	now := time.Now()
	access, refresh, err := GenerateTokenPair(u, "access-secret", "refresh-secret", now)
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"wrong secret", refresh, "other-secret"},
		{"access token against refresh endpoint", access, "refresh-secret"},
		{"garbage", "not.a.jwt", "refresh-secret"},
		{"empty", "", "refresh-secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRefreshToken(tt.token, tt.secret); !errors.Is(err, ErrInvalidRefreshToken) {
				t.Errorf("err = %v, want ErrInvalidRefreshToken", err)
			}
		})
	}
}

func TestCheckPassword(t *testing.T) {
	var u model.UserModel
	if err := u.SetPassword("s3cret-pass"); err != nil {
		t.Fatalf("SetPassword: %v", err)
	}
	if u.UserPassword == "s3cret-pass" {
		t.Fatal("password stored in plain text")
	}
	if !u.CheckPassword("s3cret-pass") {
		t.Error("correct password rejected")
	}
	if u.CheckPassword("wrong") {
		t.Error("wrong password accepted")
	}
}
