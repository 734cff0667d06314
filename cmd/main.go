package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/docgen"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/sksmith/bunnyq"

	"github.com/brewsim/coffeeshop/api"
	"github.com/brewsim/coffeeshop/config"
	"github.com/brewsim/coffeeshop/core/analytics"
	"github.com/brewsim/coffeeshop/core/catalog"
	"github.com/brewsim/coffeeshop/core/inventory"
	"github.com/brewsim/coffeeshop/core/order"
	"github.com/brewsim/coffeeshop/core/payment"
	"github.com/brewsim/coffeeshop/core/staff"
	"github.com/brewsim/coffeeshop/queue"

	"github.com/common-nighthawk/go-figure"
)

// eventNotifier is everything the services publish to the outside world.
type eventNotifier interface {
	inventory.Notifier
	order.Notifier
}

func main() {
	ctx := context.Background()

	cfg := config.Load()

	configLogging(cfg)
	printLogHeader(cfg)
	cfg.Print()

	// Money renders as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	log.Info().Msg("creating analytics recorder...")
	recorder := analytics.NewRecorder()

	log.Info().Msg("loading menu catalog...")
	menu := catalog.Default()

	var bq *bunnyq.BunnyQ
	if !cfg.RabbitMQ.Mock {
		bq = rabbit(cfg)
	}
	notifier := configEventQueue(bq, cfg)

	log.Info().Msg("creating inventory service...")
	economy := cfg.Shop.EconomyTable()
	log.Info().Int("ingredients", len(economy.Ingredients)).Msg("loaded ingredient economy")
	inventoryService := inventory.NewService(economy, recorder, notifier)

	log.Info().Msg("creating payment service...")
	paymentService := payment.NewService(recorder, cfg.Shop.Currency, shiftTarget(cfg))

	log.Info().Msg("creating order service...")
	orderService := order.NewService(menu, inventoryService, paymentService, notifier)

	log.Info().Msg("creating staff service...")
	staffService := staff.NewService(staff.NewMemoryRepo())
	seedManager(ctx, staffService, cfg)

	log.Info().Msg("configuring metrics...")
	api.ConfigureMetrics()

	log.Info().Msg("configuring router...")
	r := api.ConfigureRouter(cfg, api.Services{
		Inventory: inventoryService,
		Order:     orderService,
		Payment:   paymentService,
		History:   recorder,
		Menu:      menu,
		Staff:     staffService,
	})

	if cfg.GenerateRoutes {
		log.Info().Msg("generating route documentation...")
		fmt.Println(docgen.JSONRoutesDoc(r))
	}

	if bq != nil {
		log.Info().Msg("consuming restock commands...")
		restockQueue := queue.NewRestockQueue(bq, cfg.RabbitMQ.Restock.Queue, cfg.RabbitMQ.Restock.Dlt.Exchange)
		go restockQueue.ConsumeRestocks(context.Background(), inventoryService)
	}

	log.Info().Str("port", cfg.Port).Msg("listening")
	log.Fatal().Err(http.ListenAndServe(":"+cfg.Port, r)).Send()
}

func configEventQueue(bq *bunnyq.BunnyQ, cfg *config.Config) eventNotifier {
	if cfg.RabbitMQ.Mock {
		log.Info().Msg("creating mock queue...")
		return queue.NewMockEventQueue()
	}

	log.Info().Msg("connecting to rabbitmq...")
	return queue.New(bq,
		cfg.RabbitMQ.Inventory.Exchange,
		cfg.RabbitMQ.Purchase.Exchange,
		cfg.RabbitMQ.Order.Exchange)
}

func shiftTarget(cfg *config.Config) decimal.Decimal {
	target, err := decimal.NewFromString(cfg.Shop.TargetEarnings)
	if err != nil {
		log.Warn().Err(err).Str("targetEarnings", cfg.Shop.TargetEarnings).Msg("invalid shift target, defaulting to 100.00")
		return decimal.NewFromInt(100)
	}
	return target
}

func seedManager(ctx context.Context, svc staff.Service, cfg *config.Config) {
	_, err := svc.Create(ctx, staff.CreateStaffRequest{
		Username:          cfg.Shop.ManagerUser,
		IsManager:         true,
		PlainTextPassword: cfg.Shop.ManagerPass,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to seed manager account")
	}
}

func rabbit(cfg *config.Config) *bunnyq.BunnyQ {
	osChannel := make(chan os.Signal, 1)
	signal.Notify(osChannel, syscall.SIGTERM)

	return bunnyq.New(context.Background(),
		bunnyq.Address{
			User: cfg.RabbitMQ.User,
			Pass: cfg.RabbitMQ.Pass,
			Host: cfg.RabbitMQ.Host,
			Port: cfg.RabbitMQ.Port,
		},
		osChannel,
		bunnyq.LogHandler(logger{}),
	)
}

type logger struct {
}

func (l logger) Log(_ context.Context, level bunnyq.LogLevel, msg string, data map[string]interface{}) {
	var evt *zerolog.Event
	switch level {
	case bunnyq.LogLevelTrace:
		evt = log.Trace()
	case bunnyq.LogLevelDebug:
		evt = log.Debug()
	case bunnyq.LogLevelInfo:
		evt = log.Info()
	case bunnyq.LogLevelWarn:
		evt = log.Warn()
	case bunnyq.LogLevelError:
		evt = log.Error()
	case bunnyq.LogLevelNone:
		evt = log.Info()
	default:
		evt = log.Info()
	}

	for k, v := range data {
		evt.Interface(k, v)
	}

	evt.Msg(msg)
}

func printLogHeader(cfg *config.Config) {
	if cfg.Log.Structured {
		log.Info().Str("application", cfg.AppName).
			Str("revision", cfg.Revision).
			Str("version", cfg.AppVersion).
			Str("sha1ver", cfg.Sha1Version).
			Str("build-time", cfg.BuildTime).
			Str("profile", cfg.Profile).
			Str("config-source", cfg.Config.Source).
			Str("config-branch", cfg.Config.Spring.Branch).
			Send()
	} else {
		f := figure.NewFigure(cfg.AppName, "", true)
		f.Print()

		log.Info().Msg("=============================================")
		log.Info().Msg(fmt.Sprintf("       Revision: %s", cfg.Revision))
		log.Info().Msg(fmt.Sprintf("        Profile: %s", cfg.Profile))
		log.Info().Msg(fmt.Sprintf("  Config Server: %s - %s", cfg.Config.Source, cfg.Config.Spring.Branch))
		log.Info().Msg(fmt.Sprintf("    Tag Version: %s", cfg.AppVersion))
		log.Info().Msg(fmt.Sprintf("   Sha1 Version: %s", cfg.Sha1Version))
		log.Info().Msg(fmt.Sprintf("     Build Time: %s", cfg.BuildTime))
		log.Info().Msg("=============================================")
	}
}

func configLogging(cfg *config.Config) {
	log.Info().Msg("configuring logging...")

	if !cfg.Log.Structured {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		log.Warn().Str("loglevel", cfg.Log.Level).Err(err).Msg("defaulting to info")
		level = zerolog.InfoLevel
	}
	log.Info().Str("loglevel", level.String()).Msg("setting log level")
	zerolog.SetGlobalLevel(level)
}
