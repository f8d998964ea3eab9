package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"boardcamp/app/echoServer"
	customerctrl "boardcamp/app/echoServer/controller/customer"
	gamectrl "boardcamp/app/echoServer/controller/game"
	rentalctrl "boardcamp/app/echoServer/controller/rental"
	"boardcamp/app/echoServer/validation"
	"boardcamp/config"
	_ "boardcamp/docs"
	customersvc "boardcamp/service/customer"
	gamesvc "boardcamp/service/game"
	rentalsvc "boardcamp/service/rental"
	"boardcamp/util/validate"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	echoSwagger "github.com/swaggo/echo-swagger"
)

var migrateOnStart bool

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Apply the schema before serving")
}

func runServe(parent context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// logger
	log := newLogger(cfg)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("db connect failed", "driver", cfg.StoreDriver, "err", err)
		return err
	}
	defer st.close()

	if migrateOnStart {
		if err := st.migrate(ctx); err != nil {
			log.Error("migrate failed", "err", err)
			return err
		}
	}

	// services
	cs := customersvc.New(st.Customers)
	gs := gamesvc.New(st.Games)
	rs := rentalsvc.New(st.Rentals,
		rentalsvc.WithStockRelease(cfg.StockRelease),
		rentalsvc.WithLogger(log),
	)

	// controllers
	v := validate.New()
	customerC := &customerctrl.Controller{Svc: cs, Log: log}
	gameC := &gamectrl.Controller{Svc: gs, V: v, Log: log}
	rentalC := &rentalctrl.Controller{Svc: rs, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e, log)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Customer: customerC,
		Game:     gameC,
		Rental:   rentalC,
	})

	log.Info("starting server", "port", cfg.Port, "driver", cfg.StoreDriver, "stock_release", cfg.StockRelease)

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server stopped", "err", err)
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout", cfg.ShutdownTimeout)
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}
