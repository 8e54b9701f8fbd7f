package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestSetup_WritesToFile(t *testing.T) {
	t.Cleanup(func() {
		log.Logger = zerolog.Nop()
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	path := filepath.Join(t.TempDir(), "logs", "tune.log")
	closer, err := Setup(path, true)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	log.Debug().Str("track", "a.mp3").Msg("Playing")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"track":"a.mp3"`) {
		t.Errorf("log = %q, want the debug event", data)
	}
}

func TestSetup_InfoHidesDebug(t *testing.T) {
	t.Cleanup(func() {
		log.Logger = zerolog.Nop()
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	path := filepath.Join(t.TempDir(), "tune.log")
	closer, err := Setup(path, false)
	if err != nil {
		t.Fatalf("Setup() error = %v", err)
	}

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")
	closer.Close()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Errorf("log = %q, want only the info event", data)
	}
}

func TestSetup_Unopenable(t *testing.T) {
	t.Cleanup(func() {
		log.Logger = zerolog.Nop()
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	})

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}

	closer, err := Setup(filepath.Join(blocker, "tune.log"), false)
	if err == nil {
		t.Error("expected error when the log directory is a file")
	}
	if closer == nil || closer.Close() != nil {
		t.Error("closer should be usable after a failed Setup")
	}
}
