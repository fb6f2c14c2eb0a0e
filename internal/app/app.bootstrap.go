package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/joshuarp/consent-bridge/internal/shared/config"
	sharedlog "github.com/joshuarp/consent-bridge/internal/shared/log"
)

const (
	BinAll      = "all"
	BinLink     = "link"
	BinDataFlow = "dataflow"
	BinConsent  = "consent"
)

type configBinIn struct {
	fx.In
	Bin string `name:"bin"`
}

// New builds the process. Every component is constructed by Build; fx only
// loads config, runs Build and drives start and stop.
func New(bin string) *fx.App {
	return fx.New(
		fx.Supply(
			fx.Annotate(
				normalizeBin(bin),
				fx.ResultTags(`name:"bin"`),
			),
		),
		fx.Provide(
			provideConfig,
			sharedlog.NewJSONLogger,
			provideRoot,
		),
		fx.Invoke(registerLifecycle),
	)
}

func normalizeBin(bin string) string {
	normalized := strings.TrimSpace(strings.ToLower(bin))
	switch normalized {
	case BinLink, BinDataFlow, BinConsent:
		return normalized
	case "data-flow", "data_flow":
		return BinDataFlow
	default:
		return BinAll
	}
}

func isSingleBinaryBin(bin string) bool {
	normalized := strings.TrimSpace(strings.ToLower(bin))
	return normalized == "" || normalized == BinAll
}

func provideConfig(in configBinIn) (config.ConfigProvider, error) {
	bin := normalizeBin(in.Bin)

	loadOrder := make([]config.Options, 0, 4)
	if !isSingleBinaryBin(bin) {
		loadOrder = append(loadOrder,
			config.Options{
				YAMLPath: fmt.Sprintf("config.%s.yaml", bin),
				EnvPath:  fmt.Sprintf(".env.%s", bin),
			},
			config.Options{
				YAMLPath: fmt.Sprintf("config.%s.yaml.example", bin),
				EnvPath:  fmt.Sprintf(".env.%s.example", bin),
			},
		)
	}

	loadOrder = append(loadOrder,
		config.Options{
			YAMLPath: "config.yaml",
			EnvPath:  ".env",
		},
		config.Options{
			YAMLPath: "config.yaml.example",
			EnvPath:  ".env.example",
		},
	)

	var lastErr error
	for _, opts := range loadOrder {
		opts.EnvPrefix = "CONSENT"
		provider, err := config.Init(opts)
		if err == nil {
			return provider, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func newFiberApp(cfg config.ConfigProvider) *fiber.App {
	readTimeout := cfg.GetDuration("server.read_timeout")
	if readTimeout <= 0 {
		readTimeout = 30 * time.Second
	}

	writeTimeout := cfg.GetDuration("server.write_timeout")
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}

	return fiber.New(fiber.Config{
		AppName:      cfg.GetString("app.name"),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})
}
