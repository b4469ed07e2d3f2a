package cmd

import (
	"context"
	"fmt"
	"syscall"
	"time"

	"git.sr.ht/~mariusor/lw"
	w "git.sr.ht/~mariusor/wrapper"
	"github.com/robfig/cron/v3"
	"github.com/urfave/cli"

	"confsched/internal/config"
	"confsched/schedule"
	"confsched/web"
)

var Server = cli.Command{
	Name:  "start",
	Usage: "Starts the schedule serving server",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Output debug messages",
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "Set hostname on which to listen to",
			Value: "localhost",
		},
		&cli.IntFlag{
			Name:  "port",
			Usage: "Set port on which to listen to",
			Value: 9999,
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path of the YAML configuration file",
		},
	},
	Action: serverStart,
}

var wait = 100 * time.Millisecond

func serverStart(c *cli.Context) error {
	logger := lw.Dev()

	cfg := config.Default()
	if cfgPath := c.String("config"); len(cfgPath) > 0 {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
	}

	listen := cfg.Listen
	if c.IsSet("host") || c.IsSet("port") {
		listen = fmt.Sprintf("%s:%d", c.String("host"), c.Int("port"))
	}
	logger.Infof("Listening on %s", listen)

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), wait)
	defer cancel()

	path := c.GlobalString("path")
	st := openStorage(c)

	refresh := func() {
		if len(cfg.Source) == 0 {
			return
		}
		events, err := schedule.FileSource(cfg.Source).Load()
		if err != nil {
			logger.Errorf("Unable to refresh from %s: %s", cfg.Source, err)
			return
		}
		saved, skipped := saveEvents(st, events, false, false)
		if saved > 0 || skipped > 0 {
			logger.Infof("Refreshed from %s: %d saved, %d skipped", cfg.Source, saved, skipped)
		}
	}

	cr := cron.New()
	if len(cfg.RefreshCron) > 0 && len(cfg.Source) > 0 {
		if _, err := cr.AddFunc(cfg.RefreshCron, refresh); err != nil {
			return fmt.Errorf("invalid refresh schedule %q: %w", cfg.RefreshCron, err)
		}
	}

	// Get start/stop functions for the http server
	srvRun, srvStop := w.HttpServer(w.Handler(web.Routes(path, cfg.RoomTable())), w.OnTCP(listen))
	w.RegisterSignalHandlers(w.SignalHandlers{
		syscall.SIGHUP: func(_ chan int) {
			logger.Infof("SIGHUP received, reloading configuration")
			if cfgPath := c.String("config"); len(cfgPath) > 0 {
				if reloaded, err := config.Load(cfgPath); err == nil {
					cfg = reloaded
				} else {
					logger.Errorf("Unable to reload configuration: %s", err)
				}
			}
		},
		syscall.SIGINT: func(exit chan int) {
			logger.Infof("SIGINT received, stopping")
			exit <- 0
		},
		syscall.SIGTERM: func(exit chan int) {
			logger.Infof("SIGTERM received, force stopping")
			exit <- 0
		},
		syscall.SIGQUIT: func(exit chan int) {
			logger.Infof("SIGQUIT received, force stopping with core-dump")
			exit <- 0
		},
	}).Exec(func() error {
		refresh()
		cr.Start()
		defer cr.Stop()

		if err := srvRun(); err != nil {
			logger.Errorf("Error: %s", err)
			return err
		}
		var err error
		// Doesn't block if no connections, but will otherwise wait until the timeout deadline.
		go func(e error) {
			if err = srvStop(ctx); err != nil {
				logger.Errorf("Error: %s", err)
			}
		}(err)
		return err
	})

	return nil
}
