package main

import (
	"errors"
	"testing"

	"goat-tracker/internal/adapters/auth/jwtauth"
	"goat-tracker/internal/adapters/auth/remote"
	"goat-tracker/internal/config"
)

func TestNewVerifier_ByMode(t *testing.T) {
	v, err := newVerifier(config.AuthConfig{Mode: config.AuthModeDev})
	if err != nil || v != nil {
		t.Fatalf("dev mode: expected nil verifier, got %v, %v", v, err)
	}

	v, err = newVerifier(config.AuthConfig{Mode: config.AuthModeJWT, JWTSecret: "s3cret"})
	if err != nil || v == nil {
		t.Fatalf("jwt mode: expected verifier, got %v, %v", v, err)
	}

	v, err = newVerifier(config.AuthConfig{Mode: config.AuthModeRemote, BaseURL: "http://iam.local", APIKey: "k"})
	if err != nil || v == nil {
		t.Fatalf("remote mode: expected verifier, got %v, %v", v, err)
	}
}

func TestNewVerifier_MissingSettings(t *testing.T) {
	if _, err := newVerifier(config.AuthConfig{Mode: config.AuthModeJWT}); !errors.Is(err, jwtauth.ErrNoSecret) {
		t.Fatalf("expected ErrNoSecret, got %v", err)
	}
	if _, err := newVerifier(config.AuthConfig{Mode: config.AuthModeRemote}); !errors.Is(err, remote.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
