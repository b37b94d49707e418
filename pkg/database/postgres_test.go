package database

import (
	"strings"
	"testing"

	"movieweb/pkg/utils"
)

func TestConnStringIncludesAllFields(t *testing.T) {
	cfg := utils.DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "movieweb",
		Password: "secret",
		Name:     "movieweb",
	}

	got := connString(cfg)

	for _, part := range []string{
		"host=db.internal",
		"port=5433",
		"user=movieweb",
		"password=secret",
		"dbname=movieweb",
		"sslmode=disable",
	} {
		if !strings.Contains(got, part) {
			t.Errorf("connection string missing %q: %s", part, got)
		}
	}
}
