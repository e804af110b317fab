package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/team-report/internal/config"
	"github.com/riskibarqy/team-report/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "flag off",
			cfg: config.Config{
				UptraceEnabled: false,
				ServiceName:    "team-report",
				ServiceVersion: "dev",
				AppEnv:         config.EnvDev,
			},
		},
		{
			name: "enabled without dsn",
			cfg: config.Config{
				UptraceEnabled: true,
				UptraceDSN:     "  ",
				ServiceName:    "team-report",
				AppEnv:         config.EnvDev,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			shutdown, err := InitUptrace(tc.cfg, logging.NewNop())
			if err != nil {
				t.Fatalf("init uptrace: %v", err)
			}
			if err := shutdown(context.Background()); err != nil {
				t.Fatalf("shutdown uptrace: %v", err)
			}
		})
	}
}
