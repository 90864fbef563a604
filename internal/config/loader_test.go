package config_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"resultsvc/internal/config"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()
		defer clearConfigEnvVars()

		convey.Convey("When nothing is configured", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then defaults apply", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, 3000)
				convey.So(cfg.Addr(), convey.ShouldEqual, ":3000")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.StaticDir, convey.ShouldEqual, "public")
				convey.So(cfg.Database.Driver, convey.ShouldEqual, "sqlite")
				convey.So(cfg.Database.DSN, convey.ShouldEqual, "./results.db")
				convey.So(cfg.CORS.AllowedOrigins, convey.ShouldResemble, []string{"*"})
			})
		})

		convey.Convey("When PORT is set", func() {
			_ = os.Setenv("PORT", "8081")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it overrides the default port", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, 8081)
			})
		})

		convey.Convey("When PORT is set but empty", func() {
			_ = os.Setenv("PORT", "")

			cfg, err := config.Load(ctx)

			convey.Convey("Then the default port is kept", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, 3000)
			})
		})

		convey.Convey("When prefixed variables are set", func() {
			_ = os.Setenv("RESULTS_LOG_LEVEL", "debug")
			_ = os.Setenv("RESULTS_STATIC_DIR", "/srv/public")
			_ = os.Setenv("RESULTS_DATABASE__DRIVER", "pgx")
			_ = os.Setenv("RESULTS_DATABASE__DSN", "postgres://localhost/results")

			cfg, err := config.Load(ctx)

			convey.Convey("Then nested keys are mapped", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.StaticDir, convey.ShouldEqual, "/srv/public")
				convey.So(cfg.Database.Driver, convey.ShouldEqual, "pgx")
				convey.So(cfg.Database.DSN, convey.ShouldEqual, "postgres://localhost/results")
			})
		})

		convey.Convey("When a YAML file is given", func() {
			tmpFile := createTempConfigFile(`
port: 4000
static_dir: ./web
database:
  dsn: /var/lib/results.db
cors:
  allowed_origins:
    - https://results.example.com
`)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("RESULTS_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values merge with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Port, convey.ShouldEqual, 4000)
				convey.So(cfg.StaticDir, convey.ShouldEqual, "./web")
				convey.So(cfg.Database.Driver, convey.ShouldEqual, "sqlite")
				convey.So(cfg.Database.DSN, convey.ShouldEqual, "/var/lib/results.db")
				convey.So(cfg.CORS.AllowedOrigins, convey.ShouldResemble, []string{"https://results.example.com"})
			})

			convey.Convey("And PORT is also set", func() {
				_ = os.Setenv("PORT", "5000")

				cfg, err := config.Load(ctx)

				convey.Convey("Then the environment wins", func() {
					convey.So(err, convey.ShouldBeNil)
					convey.So(cfg.Port, convey.ShouldEqual, 5000)
					convey.So(cfg.StaticDir, convey.ShouldEqual, "./web")
				})
			})
		})

		convey.Convey("When the file does not exist", func() {
			_ = os.Setenv("RESULTS_CONFIG", "/non/existent/results.yaml")

			cfg, err := config.Load(ctx)

			convey.Convey("Then a load error is returned", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the file is not valid YAML", func() {
			tmpFile := createTempConfigFile(`port: [`)
			defer func() { _ = os.Remove(tmpFile) }()
			_ = os.Setenv("RESULTS_CONFIG", tmpFile)

			cfg, err := config.Load(ctx)

			convey.Convey("Then a load error is returned", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When PORT is not a number", func() {
			_ = os.Setenv("PORT", "http")

			cfg, err := config.Load(ctx)

			convey.Convey("Then it fails", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When PORT is out of range", func() {
			_ = os.Setenv("PORT", "70000")

			cfg, err := config.Load(ctx)

			convey.Convey("Then validation fails", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "port 70000")
			})
		})

		convey.Convey("When the driver is unknown", func() {
			_ = os.Setenv("RESULTS_DATABASE__DRIVER", "mysql")

			cfg, err := config.Load(ctx)

			convey.Convey("Then validation fails", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, envVar := range []string{
		"PORT",
		"RESULTS_CONFIG",
		"RESULTS_LOG_LEVEL",
		"RESULTS_STATIC_DIR",
		"RESULTS_DATABASE__DRIVER",
		"RESULTS_DATABASE__DSN",
	} {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "results-config-*.yaml")
	if err != nil {
		panic(err)
	}
	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}
	if err := tmpFile.Close(); err != nil {
		panic(err)
	}
	return tmpFile.Name()
}
