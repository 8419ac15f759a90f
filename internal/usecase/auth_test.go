package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/BaseMax/travel-planner-graphql/internal/auth"
	"github.com/BaseMax/travel-planner-graphql/internal/domain"
	"github.com/BaseMax/travel-planner-graphql/internal/infrastructure/memory"
	"github.com/BaseMax/travel-planner-graphql/internal/usecase"
)

// ---- helpers ----

const testJWTKey = "test-jwt-secret-at-least-32-chars!!"

func newAuthUsecase() (*usecase.AuthUsecase, *memory.UserRepository, *auth.TokenService) {
	users := memory.NewUserRepository()
	tokens := auth.NewTokenService([]byte(testJWTKey))
	return usecase.NewAuthUsecase(users, tokens), users, tokens
}

var signupMax = usecase.SignupInput{
	Name:     "Max",
	Email:    "max@example.com",
	Password: "hunter22",
}

// ---- Signup ----

func TestSignup_ReturnsVerifiableToken(t *testing.T) {
	uc, _, tokens := newAuthUsecase()

	out, err := uc.Signup(context.Background(), signupMax)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Name != "Max" {
		t.Errorf("auth name %q, want Max", out.Name)
	}

	principal, err := tokens.Verify(out.Token)
	if err != nil {
		t.Fatalf("signup token does not verify: %v", err)
	}
	if principal.Name != "Max" {
		t.Errorf("token principal name %q, want Max", principal.Name)
	}
}

func TestSignup_StoresHashedPassword(t *testing.T) {
	uc, users, _ := newAuthUsecase()

	if _, err := uc.Signup(context.Background(), signupMax); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, err := users.FindByEmail(context.Background(), signupMax.Email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored.PasswordHash == signupMax.Password {
		t.Fatal("password stored in plaintext")
	}
	if err := auth.VerifyPassword(stored.PasswordHash, signupMax.Password); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestSignup_DuplicateEmailFails(t *testing.T) {
	uc, users, _ := newAuthUsecase()

	if _, err := uc.Signup(context.Background(), signupMax); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before, err := users.FindByEmail(context.Background(), signupMax.Email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again := signupMax
	again.Name = "Impostor"
	_, err = uc.Signup(context.Background(), again)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// The original account is untouched.
	after, err := users.FindByEmail(context.Background(), signupMax.Email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after.Name != before.Name || after.ID != before.ID {
		t.Fatalf("existing user mutated: %+v != %+v", after, before)
	}
}

// ---- Login ----

func TestLogin_CorrectCredentialsSucceed(t *testing.T) {
	uc, _, tokens := newAuthUsecase()

	if _, err := uc.Signup(context.Background(), signupMax); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := uc.Login(context.Background(), signupMax.Email, signupMax.Password)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := tokens.Verify(out.Token); err != nil {
		t.Fatalf("login token does not verify: %v", err)
	}
}

func TestLogin_WrongPasswordAndUnknownEmailFailAlike(t *testing.T) {
	uc, _, _ := newAuthUsecase()

	if _, err := uc.Signup(context.Background(), signupMax); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, wrongPass := uc.Login(context.Background(), signupMax.Email, "wrong")
	_, unknownEmail := uc.Login(context.Background(), "nobody@example.com", signupMax.Password)

	if !errors.Is(wrongPass, domain.ErrBadCredentials) {
		t.Fatalf("wrong password: expected ErrBadCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknownEmail, domain.ErrBadCredentials) {
		t.Fatalf("unknown email: expected ErrBadCredentials, got %v", unknownEmail)
	}
}
