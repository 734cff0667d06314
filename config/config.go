package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	sc "github.com/sksmith/go-spring-config"
	"github.com/spf13/viper"

	"github.com/brewsim/coffeeshop/core/inventory"
)

const (
	AppName  = "Coffee Shop Simulator"
	Revision = "1"
)

var (
	// Build time arguments
	AppVersion  string
	Sha1Version string
	BuildTime   string

	// Runtime flags
	profile      *string
	configSource *string
	configUrl    *string
	configBranch *string
	configUser   *string
	configPass   *string
)

type Config struct {
	AppName         string       `json:"appName"         yaml:"appName"`
	AppNameDesc     string       `json:"appNameDesc"     yaml:"appNameDesc"`
	AppVersion      string       `json:"appVersion"      yaml:"appVersion"`
	AppVersionDesc  string       `json:"appVersionDesc"  yaml:"appVersionDesc"`
	Sha1Version     string       `json:"sha1Version"     yaml:"sha1Version"`
	Sha1VersionDesc string       `json:"sha1VersionDesc" yaml:"sha1VersionDesc"`
	BuildTime       string       `json:"buildTime"       yaml:"buildTime"`
	BuildTimeDesc   string       `json:"buildTimeDesc"   yaml:"buildTimeDesc"`
	Profile         string       `json:"profile"         yaml:"profile"`
	ProfileDesc     string       `json:"profileDesc"     yaml:"profileDesc"`
	Revision        string       `json:"revision"        yaml:"revision"`
	RevisionDesc    string       `json:"revisionDesc"    yaml:"revisionDesc"`
	Port            string       `json:"port"            yaml:"port"`
	PortDesc        string       `json:"portDesc"        yaml:"portDesc"`
	GenerateRoutes  bool         `json:"generateRoutes"  yaml:"generateRoutes"`
	Config          ConfigSource `json:"config"          yaml:"config"`
	ConfigDesc      string       `json:"configDesc"      yaml:"configDesc"`
	Log             LogConfig    `json:"log"             yaml:"log"`
	LogDesc         string       `json:"logDesc"         yaml:"logDesc"`
	Shop            ShopConfig   `json:"shop"            yaml:"shop"`
	ShopDesc        string       `json:"shopDesc"        yaml:"shopDesc"`
	RabbitMQ        QueueConfig  `json:"rabbitmq"        yaml:"rabbitmq"`
	RabbitMQDesc    string       `json:"rabbitmqDesc"    yaml:"rabbitmqDesc"`
}

type ConfigSource struct {
	Print      bool         `json:"print"      yaml:"print"`
	PrintDesc  string       `json:"printDesc"  yaml:"printDesc"`
	Source     string       `json:"source"     yaml:"source"`
	SourceDesc string       `json:"sourceDesc" yaml:"sourceDesc"`
	Spring     SpringConfig `json:"spring"     yaml:"spring"`
	SpringDesc string       `json:"springDesc" yaml:"springDesc"`
}

type SpringConfig struct {
	Url        string `json:"url"        yaml:"url"`
	UrlDesc    string `json:"urlDesc"    yaml:"urlDesc"`
	Branch     string `json:"branch"     yaml:"branch"`
	BranchDesc string `json:"branchDesc" yaml:"branchDesc"`
	User       string `json:"user"       yaml:"user"`
	UserDesc   string `json:"userDesc"   yaml:"userDesc"`
	Pass       string `json:"pass"       yaml:"pass"       sensitive:"true"`
	PassDesc   string `json:"passDesc"   yaml:"passDesc"`
}

type LogConfig struct {
	Level          string `json:"level"          yaml:"level"`
	LevelDesc      string `json:"levelDesc"      yaml:"levelDesc"`
	Structured     bool   `json:"structured"     yaml:"structured"`
	StructuredDesc string `json:"structuredDesc" yaml:"structuredDesc"`
}

type ShopConfig struct {
	Currency           string          `json:"currency"           yaml:"currency"`
	CurrencyDesc       string          `json:"currencyDesc"       yaml:"currencyDesc"`
	TargetEarnings     string          `json:"targetEarnings"     yaml:"targetEarnings"`
	TargetEarningsDesc string          `json:"targetEarningsDesc" yaml:"targetEarningsDesc"`
	ManagerUser        string          `json:"managerUser"        yaml:"managerUser"`
	ManagerUserDesc    string          `json:"managerUserDesc"    yaml:"managerUserDesc"`
	ManagerPass        string          `json:"managerPass"        yaml:"managerPass"        sensitive:"true"`
	ManagerPassDesc    string          `json:"managerPassDesc"    yaml:"managerPassDesc"`
	Economy            []IngredientRow `json:"economy"            yaml:"economy"`
	EconomyDesc        string          `json:"economyDesc"        yaml:"economyDesc"`
}

// IngredientRow is one line of the ingredient economy table. Prices travel as
// strings so the table round-trips through yaml and remote config sources
// without losing precision.
type IngredientRow struct {
	Name         string `json:"name"         yaml:"name"`
	MaxCapacity  int64  `json:"maxCapacity"  yaml:"maxCapacity"`
	LowThreshold int64  `json:"lowThreshold" yaml:"lowThreshold"`
	InitialStock int64  `json:"initialStock" yaml:"initialStock"`
	Unit         string `json:"unit"         yaml:"unit"`
	PricePerUnit string `json:"pricePerUnit" yaml:"pricePerUnit"`
}

// EconomyTable converts the configured rows into the stock ledger's economy.
// Rows with an unparseable price are dropped with a warning rather than
// aborting startup.
func (s ShopConfig) EconomyTable() inventory.Config {
	var economy inventory.Config
	for _, row := range s.Economy {
		price, err := decimal.NewFromString(row.PricePerUnit)
		if err != nil {
			log.Warn().
				Str("ingredient", row.Name).
				Str("pricePerUnit", row.PricePerUnit).
				Msg("dropping economy row with invalid price")
			continue
		}
		economy.Ingredients = append(economy.Ingredients, inventory.IngredientConfig{
			Name:         row.Name,
			MaxCapacity:  row.MaxCapacity,
			LowThreshold: row.LowThreshold,
			InitialStock: row.InitialStock,
			Unit:         row.Unit,
			PricePerUnit: price,
		})
	}
	return economy
}

type QueueConfig struct {
	Host          string               `json:"host"          yaml:"host"`
	HostDesc      string               `json:"hostDesc"      yaml:"hostDesc"`
	Port          string               `json:"port"          yaml:"port"`
	PortDesc      string               `json:"portDesc"      yaml:"portDesc"`
	User          string               `json:"user"          yaml:"user"`
	UserDesc      string               `json:"userDesc"      yaml:"userDesc"`
	Pass          string               `json:"pass"          yaml:"pass"          sensitive:"true"`
	PassDesc      string               `json:"passDesc"      yaml:"passDesc"`
	Mock          bool                 `json:"mock"          yaml:"mock"`
	MockDesc      string               `json:"mockDesc"      yaml:"mockDesc"`
	Inventory     ExchangeConfig       `json:"inventory"     yaml:"inventory"`
	InventoryDesc string               `json:"inventoryDesc" yaml:"inventoryDesc"`
	Purchase      ExchangeConfig       `json:"purchase"      yaml:"purchase"`
	PurchaseDesc  string               `json:"purchaseDesc"  yaml:"purchaseDesc"`
	Order         ExchangeConfig       `json:"order"         yaml:"order"`
	OrderDesc     string               `json:"orderDesc"     yaml:"orderDesc"`
	Restock       RestockQueueConfig   `json:"restock"       yaml:"restock"`
	RestockDesc   string               `json:"restockDesc"   yaml:"restockDesc"`
}

type ExchangeConfig struct {
	Exchange     string `json:"exchange"     yaml:"exchange"`
	ExchangeDesc string `json:"exchangeDesc" yaml:"exchangeDesc"`
}

type RestockQueueConfig struct {
	Queue     string         `json:"queue"     yaml:"queue"`
	QueueDesc string         `json:"queueDesc" yaml:"queueDesc"`
	Dlt       ExchangeConfig `json:"dlt"       yaml:"dlt"`
	DltDesc   string         `json:"dltDesc"   yaml:"dltDesc"`
}

func (c *Config) Print() {
	if c.Config.Print {
		log.Info().Interface("config", c).Msg("the following configurations have successfully loaded")
	}
}

func init() {
	profile = flag.String("p", "local", "profile for the application config")
	configSource = flag.String("s", "local", "where to get configurations from")
	configUrl = flag.String("cfgUrl", "", "url for application config server")
	configBranch = flag.String("cfgBranch", "", "branch to request from the configuration server (used for spring cloud config)")
	configUser = flag.String("cfgUser", "", "username to use when connecting to the application server")
	configPass = flag.String("cfgPass", "", "password to use when connecting to the application server")

	viper.SetDefault("port", "8080")
	viper.SetDefault("profile", "local")
	viper.SetDefault("generateRoutes", false)

	viper.SetDefault("config.print", false)

	viper.SetDefault("log.level", "trace")
	viper.SetDefault("log.structured", false)

	viper.SetDefault("shop.currency", "USD")
	viper.SetDefault("shop.targetEarnings", "100.00")
	viper.SetDefault("shop.managerUser", "manager")
	viper.SetDefault("shop.managerPass", "brewmaster")
	viper.SetDefault("shop.economy", defaultEconomy())

	viper.SetDefault("rabbitmq.host", "localhost")
	viper.SetDefault("rabbitmq.port", "5672")
	viper.SetDefault("rabbitmq.user", "guest")
	viper.SetDefault("rabbitmq.pass", "guest")
	viper.SetDefault("rabbitmq.mock", true)
	viper.SetDefault("rabbitmq.inventory.exchange", "inventory.exchange")
	viper.SetDefault("rabbitmq.purchase.exchange", "purchase.exchange")
	viper.SetDefault("rabbitmq.order.exchange", "order.exchange")
	viper.SetDefault("rabbitmq.restock.queue", "restock.queue")
	viper.SetDefault("rabbitmq.restock.dlt.exchange", "restock.dlt.exchange")
}

// defaultEconomy seeds the economy table from the ledger's built-in stock
// economy, so a deployment only has to override the rows it changes.
func defaultEconomy() []map[string]interface{} {
	stock := inventory.DefaultConfig()
	rows := make([]map[string]interface{}, 0, len(stock.Ingredients))
	for _, ing := range stock.Ingredients {
		rows = append(rows, map[string]interface{}{
			"name":         ing.Name,
			"maxCapacity":  ing.MaxCapacity,
			"lowThreshold": ing.LowThreshold,
			"initialStock": ing.InitialStock,
			"unit":         ing.Unit,
			"pricePerUnit": ing.PricePerUnit.String(),
		})
	}
	return rows
}

// LoadDefaults builds a configuration from defaults alone, skipping local
// files and remote sources. Used by tests.
func LoadDefaults() *Config {
	config := createConfig()
	if err := viper.Unmarshal(config); err != nil {
		log.Fatal().Err(err).Msg("failed to load default configurations")
	}
	return config
}

func Load() *Config {
	config := createConfig()

	var err error
	switch *configSource {
	case "spring":
		err = loadRemoteConfigs(config)
	case "local":
		err = loadLocalConfigs(config)
	default:
		log.Warn().
			Str("configSource", *configSource).
			Msg("unrecognized configuration source, using local")

		err = loadLocalConfigs(config)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configurations")
	}

	return config
}

func createConfig() *Config {
	config := &Config{}
	setDescriptions(config)

	config.Config.Source = *configSource
	config.Config.Spring.Url = *configUrl
	config.Config.Spring.Branch = *configBranch
	config.Config.Spring.User = *configUser
	config.Config.Spring.Pass = *configPass

	config.AppName = AppName
	config.AppVersion = AppVersion
	config.Sha1Version = Sha1Version
	config.BuildTime = BuildTime
	config.Revision = Revision
	config.Profile = *profile

	return config
}

func loadLocalConfigs(config *Config) error {
	log.Info().Msg("loading local configurations...")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	err := viper.ReadInConfig()
	if err != nil {
		// Defaults cover a missing config file.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		log.Warn().Msg("no local config file found, using defaults")
	}

	return viper.Unmarshal(config)
}

const maxRetries = 5

func loadRemoteConfigs(config *Config) error {
	log.Info().Str("url", config.Config.Spring.Url).Msg("loading remote configurations...")

	var remote *sc.Config
	var err error

	for tryCount := 1; tryCount < maxRetries; tryCount++ {
		remote, err = sc.LoadWithCreds(
			config.Config.Spring.Url,
			AppName,
			config.Config.Spring.Branch,
			config.Config.Spring.User,
			config.Config.Spring.Pass,
			config.Profile)
		if err == nil {
			break
		}
		log.Error().Err(err).Msg("failed to load configurations... retrying")
		time.Sleep(5 * time.Second)
	}
	if err != nil {
		return err
	}

	for k, v := range remote.Values {
		viper.Set(k, fmt.Sprintf("%v", v))
	}

	return viper.Unmarshal(config)
}

func setDescriptions(config *Config) {
	config.AppNameDesc = "Name of the application in a human readable format. Example: Coffee Shop Simulator"
	config.AppVersionDesc = "Semantic version of the application. Example: v1.2.3"
	config.Sha1VersionDesc = "Git sha1 hash of the application version."
	config.BuildTimeDesc = "When the application was compiled."
	config.ProfileDesc = "Running profile of the application, can assist with sensible defaults or change behavior. Examples: local, dev, prod"
	config.RevisionDesc = "A hard coded revision handy for quickly determining if local changes are running. Examples: 1, Two, 9999"
	config.PortDesc = "Port that the application will bind to on startup. Examples: 8080, 3000"
	config.ConfigDesc = "Settings for where and how the application should get its configurations."
	config.LogDesc = "Settings for application logging."
	config.ShopDesc = "Coffee shop economy configurations."
	config.RabbitMQDesc = "Rabbit MQ configurations."

	config.Config.PrintDesc = "Print configurations on startup."
	config.Config.SourceDesc = "Where the application should go for configurations. Examples: local, spring"
	config.Config.SpringDesc = "Configuration settings for Spring Cloud Config. These are only used if config.source is spring."

	config.Config.Spring.UrlDesc = "The url of the Spring Cloud Config server."
	config.Config.Spring.BranchDesc = "The git branch to use to pull configurations from. Examples: main, master, development"
	config.Config.Spring.UserDesc = "User to use when connecting to the Spring Cloud Config server."
	config.Config.Spring.PassDesc = "Password to use when connecting to the Spring Cloud Config server."

	config.Log.LevelDesc = "The lowest level that the application should log at. Examples: info, warn, error."
	config.Log.StructuredDesc = "Whether the application should output structured (json) logging, or human friendly plain text."

	config.Shop.CurrencyDesc = "Currency reported in earnings summaries. Example: USD"
	config.Shop.TargetEarningsDesc = "Default daily earnings target for the shift. Example: 100.00"
	config.Shop.ManagerUserDesc = "Username for the seeded manager account."
	config.Shop.ManagerPassDesc = "Password for the seeded manager account."
	config.Shop.EconomyDesc = "Ingredient economy table handed to the stock ledger at startup. Each row sets an ingredient's capacity, low threshold, starting stock, unit and refill price per unit. Never mutated after load."

	config.RabbitMQ.HostDesc = "RabbitMQ's broker host."
	config.RabbitMQ.PortDesc = "RabbitMQ's broker host port."
	config.RabbitMQ.UserDesc = "User the application will use to connect to RabbitMQ."
	config.RabbitMQ.PassDesc = "Password the application will use to connect to RabbitMQ."
	config.RabbitMQ.MockDesc = "Whether or not the application should mock sending messages to RabbitMQ."
	config.RabbitMQ.InventoryDesc = "RabbitMQ settings for inventory stock updates."
	config.RabbitMQ.PurchaseDesc = "RabbitMQ settings for refill purchase events."
	config.RabbitMQ.OrderDesc = "RabbitMQ settings for completed order events."
	config.RabbitMQ.RestockDesc = "RabbitMQ settings for restock commands arriving from the back office."
	config.RabbitMQ.Inventory.ExchangeDesc = "RabbitMQ exchange to use for posting inventory updates."
	config.RabbitMQ.Purchase.ExchangeDesc = "RabbitMQ exchange to use for posting refill purchases."
	config.RabbitMQ.Order.ExchangeDesc = "RabbitMQ exchange to use for posting completed orders."
	config.RabbitMQ.Restock.QueueDesc = "Queue used for listening to restock commands coming from a theoretical back office system."
	config.RabbitMQ.Restock.DltDesc = "Configurations for the restock dead letter topic, where commands that fail to apply are written."
	config.RabbitMQ.Restock.Dlt.ExchangeDesc = "Exchange used for posting messages to the dead letter topic."
}
