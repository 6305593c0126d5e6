package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sample = `
app:
  http:
    port: 9090
jwt:
  secret: from-file
  access_token_ttl_min: 15
auth:
  username: boss
  password: pw
db:
  driver: memory
redis:
  addr: localhost:6379
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadFrom_File(t *testing.T) {
	c, err := LoadFrom(writeConfig(t, sample))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.App.HTTP.Port != 9090 {
		t.Errorf("expected port 9090, got %d", c.App.HTTP.Port)
	}
	if c.JWT.Secret != "from-file" || c.JWT.AccessTokenTTLMin != 15 {
		t.Errorf("unexpected jwt config: %+v", c.JWT)
	}
	if c.Auth.Username != "boss" || c.Auth.Password != "pw" {
		t.Errorf("unexpected auth config: %+v", c.Auth)
	}
	if c.DB.Driver != "memory" || c.Redis.Addr != "localhost:6379" {
		t.Errorf("unexpected db/redis config: %+v %+v", c.DB, c.Redis)
	}
	// 未写的键走默认值
	if c.JWT.Issuer != "employee-api" || c.App.Limits.MaxConcurrent != 300 || c.Redis.TTLSec != 60 {
		t.Errorf("defaults not applied: %+v %+v", c.JWT, c.App.Limits)
	}
}

func TestLoadFrom_EnvOverride(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "from-env")
	t.Setenv("APP_AUTH_USERNAME", "ops")
	c, err := LoadFrom(writeConfig(t, sample))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.JWT.Secret != "from-env" {
		t.Errorf("expected env secret, got %q", c.JWT.Secret)
	}
	if c.Auth.Username != "ops" {
		t.Errorf("expected env username, got %q", c.Auth.Username)
	}
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "s")
	t.Setenv("APP_AUTH_PASSWORD", "p")
	c, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.DB.Driver != "sqlite" || c.App.HTTP.Port != 8000 || c.Auth.Username != "admin" {
		t.Errorf("unexpected defaults: %+v", c)
	}
}

func TestValidate(t *testing.T) {
	if _, err := LoadFrom(writeConfig(t, "auth:\n  password: x\n")); err == nil {
		t.Fatalf("expected missing secret to fail validation")
	}
	if _, err := LoadFrom(writeConfig(t, "jwt:\n  secret: x\n")); err == nil {
		t.Fatalf("expected missing password to fail validation")
	}
	if _, err := LoadFrom(writeConfig(t, "jwt:\n  secret: x\nauth:\n  password: y\ndb:\n  driver: oracle\n")); err == nil {
		t.Fatalf("expected unsupported driver to fail validation")
	}
}
