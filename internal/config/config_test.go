package config

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoad_DefaultsOnly(t *testing.T) {
	cfg, err := Load("test", nil, nil, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Defaults(), cfg); diff != "" {
		t.Fatalf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Precedence(t *testing.T) {
	environ := []string{
		"PROMPTGEN_ADDR=:7000",
		"PROMPTGEN_VARIANT=green",
		"PROMPTGEN_REDIS_DB=3",
		"PROMPTGEN_SESSION_COOKIE_NAME=envcookie",
		"UNRELATED=1",
	}
	args := []string{"-config", "testdata/server.yaml", "-addr", ":6000"}

	cfg, err := Load("test", args, environ, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Defaults()
	// file
	want.Prompts = "./prompts.yaml"
	want.ShutdownTimeout = 10 * time.Second
	want.Session.SecureCookie = true
	want.Redis.Addr = "localhost:6379"
	want.Redis.TTL = time.Hour
	// env over file
	want.Variant = "green"
	want.Redis.DB = 3
	want.Session.CookieName = "envcookie"
	// flag over env
	want.Addr = ":6000"

	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	cfg, err := Load("test", nil, []string{"PROMPTGEN_CONFIG=testdata/server.yaml"}, io.Discard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Variant != "amber" || cfg.Addr != ":9000" {
		t.Fatalf("expected file values, got %+v", cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		environ []string
		want    string
	}{
		{name: "missing file", args: []string{"-config", "testdata/missing.yaml"}, want: "read"},
		{name: "bad env", environ: []string{"PROMPTGEN_REDIS_DB=two"}, want: "parse env"},
		{name: "bad flag", args: []string{"-nope"}, want: "not defined"},
		{name: "invalid", environ: []string{"PROMPTGEN_SHUTDOWN_TIMEOUT=-1s"}, want: "shutdownTimeout"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load("test", tc.args, tc.environ, io.Discard)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestDecode_RejectsUnknownKeys(t *testing.T) {
	cfg := Defaults()
	if err := Decode(&cfg, []byte("adrr: ':1'\n")); err == nil {
		t.Fatalf("expected unknown key error")
	}
	if err := Decode(&cfg, []byte("  \n")); err != nil {
		t.Fatalf("expected empty document to be accepted, got %v", err)
	}
}

func TestValidate_RedisTTL(t *testing.T) {
	cfg := Defaults()
	cfg.Redis.Addr = "localhost:6379"
	cfg.Redis.TTL = 0
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "redis.ttl") {
		t.Fatalf("expected redis.ttl error, got %v", err)
	}
}
