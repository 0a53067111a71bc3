package embed

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/linkpeek/internal/application/port"
)

// Engine names accepted by New.
const (
	EngineProbe   = "probe"
	EngineChrome  = "chrome"
	EngineOffline = "offline"
)

// Config selects and tunes an engine.
type Config struct {
	Engine       string
	ProbeTimeout time.Duration
	ChromePath   string
	Refuse       []string
}

// New builds the engine named by cfg.Engine.
func New(cfg Config) (port.EmbedEngine, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Engine)) {
	case EngineProbe, "":
		return NewProbeEngine(cfg.ProbeTimeout), nil
	case EngineChrome:
		return NewChromeEngine(ChromeOptions{ExecPath: cfg.ChromePath, Timeout: cfg.ProbeTimeout}), nil
	case EngineOffline:
		return &OfflineEngine{Refuse: cfg.Refuse}, nil
	default:
		return nil, fmt.Errorf("unknown embed engine %q", cfg.Engine)
	}
}

// EngineNames lists the supported engines.
func EngineNames() []string {
	return []string{EngineProbe, EngineChrome, EngineOffline}
}
