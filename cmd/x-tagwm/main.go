package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ItsNotGoodName/x-tagwm/internal/api"
	"github.com/ItsNotGoodName/x-tagwm/internal/build"
	"github.com/ItsNotGoodName/x-tagwm/internal/bus"
	"github.com/ItsNotGoodName/x-tagwm/internal/config"
	"github.com/ItsNotGoodName/x-tagwm/internal/core"
	"github.com/ItsNotGoodName/x-tagwm/internal/wm"
	"github.com/ItsNotGoodName/x-tagwm/pkg/sutureext"
	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/jezek/xgb"
	"github.com/joho/godotenv"
	"github.com/k0kubun/pp"
	"github.com/phsym/console-slog"
)

type Options struct {
	Debug  bool   `doc:"enable debug"`
	Host   string `doc:"host to listen on"`
	Port   int    `doc:"port to listen on" default:"8080"`
	Config string `doc:"config file" default:".x-tagwm.yaml"`
}

func main() {
	godotenv.Load()

	cli := humacli.New(func(hooks humacli.Hooks, options *Options) {
		if options.Debug {
			InitLogger(slog.LevelDebug)
		} else {
			InitLogger(slog.LevelInfo)
		}

		OnServe(hooks, func(ctx context.Context) error {
			bus.SetContext(ctx)

			configFilePath, err := filepath.Abs(options.Config)
			if err != nil {
				return err
			}

			store, err := config.NewStore(config.NewYAML(configFilePath))
			if err != nil {
				return err
			}

			if err := wm.NormalizeConfig(store); err != nil {
				return err
			}

			if options.Debug {
				cfg, err := store.GetConfig()
				if err != nil {
					return err
				}
				pp.Println(cfg)
			}

			conn, err := xgb.NewConn()
			if err != nil {
				return err
			}
			defer conn.Close()

			manager, err := wm.NewManager(conn, store)
			if err != nil {
				return err
			}

			bus.Subscribe("main", func(ctx context.Context, event wm.EventRetiled) error {
				slog.Debug("Tag retiled", "tag", event.TagUUID, "layout", event.Layout, "windows", event.Windows)
				return nil
			})

			super := sutureext.NewSimple("x-tagwm")
			sutureext.Add(super, manager)
			sutureext.Add(super, api.NewServer(core.Address(options.Host, options.Port), manager))

			return super.Serve(ctx)
		})
	})

	cli.Root().Version = build.Current.Version

	cli.Run()
}

func InitLogger(level slog.Level) {
	slog.SetDefault(slog.New(console.NewHandler(os.Stderr, &console.HandlerOptions{
		Level: level,
	})))
}

func OnServe(hooks humacli.Hooks, serveFn func(ctx context.Context) error) {
	stopC := make(chan struct{})
	hooks.OnStart(func() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		errC := make(chan error, 1)

		go func() { errC <- serveFn(ctx) }()

		select {
		case <-stopC:
			cancel()
		case err := <-errC:
			if err != nil && !errors.Is(err, context.Canceled) {
				log.Fatal(err)
			}
			return
		}

		<-errC
		<-stopC
	})
	hooks.OnStop(func() {
		stopC <- struct{}{}
		stopC <- struct{}{}
	})
}
