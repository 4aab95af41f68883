package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"googlemaps.github.io/maps"

	"github.com/bitmark-inc/healthradar-api/api"
	"github.com/bitmark-inc/healthradar-api/consts"
	"github.com/bitmark-inc/healthradar-api/external/aqi"
	"github.com/bitmark-inc/healthradar-api/geo"
	"github.com/bitmark-inc/healthradar-api/simulate"
	"github.com/bitmark-inc/healthradar-api/store"
	"github.com/bitmark-inc/healthradar-api/utils"
)

// lifecycle holds what a shutdown signal has to stop. The signal handler
// runs on its own goroutine while main is still initializing.
type lifecycle struct {
	sync.Mutex
	cancelInit context.CancelFunc
	server     *api.Server
	mongoStore store.MongoStore
}

func (l *lifecycle) setServer(s *api.Server) {
	l.Lock()
	defer l.Unlock()
	l.server = s
}

func (l *lifecycle) setMongoStore(m store.MongoStore) {
	l.Lock()
	defer l.Unlock()
	l.mongoStore = m
}

// shutdown cancels a running initialization, then stops the server and
// closes the store when they exist.
func (l *lifecycle) shutdown(ctx context.Context) {
	l.Lock()
	cancelInit, server, mongoStore := l.cancelInit, l.server, l.mongoStore
	l.Unlock()

	if cancelInit != nil {
		log.Info("Cancelling initialization")
		cancelInit()
	}

	if server != nil {
		log.Info("Shutdown api server")
		if err := server.Shutdown(ctx); err != nil {
			log.Error("Server Shutdown:", err)
		}
	}

	if mongoStore != nil {
		log.Info("Shutting down db store")
		mongoStore.Close()
	}
}

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("i18n.dir", "i18n")
	viper.SetDefault("mongo.pool", 10)
	viper.SetDefault("simulation.heat_count", consts.DefaultHeatCount)
	viper.SetDefault("simulation.report_count", consts.DefaultReportCount)
	viper.SetDefault("simulation.radius", consts.DefaultRadius)

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("healthradar")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// initMongo connects the city catalog. It returns nil when no connection
// string is configured.
func initMongo(ctx context.Context) store.MongoStore {
	if viper.GetString("mongo.conn") == "" {
		log.WithField("prefix", "init").Warn("mongo.conn is empty, city catalog disabled")
		return nil
	}

	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(ctx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	return store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
}

// initCityResolver chains the built-in cities, the catalog and, with an api
// key, google geocoding.
func initCityResolver(catalog store.CityCatalog, httpClient *http.Client) geo.CityResolver {
	resolvers := []geo.CityResolver{geo.NewStaticCityResolver()}

	if catalog != nil {
		resolvers = append(resolvers, geo.NewCatalogCityResolver(catalog))
	}

	if key := viper.GetString("map.apikey"); key != "" {
		client, err := maps.NewClient(maps.WithAPIKey(key), maps.WithHTTPClient(httpClient))
		if err != nil {
			log.WithField("prefix", "init").Errorf("init google map client with error: %s", err)
		} else {
			resolvers = append(resolvers, geo.NewGeocodingCityResolver(client, "fi"))
		}
	}

	return geo.NewMultipleCityResolver(resolvers...)
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())
	app := &lifecycle{cancelInit: cancelInitialization}

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.shutdown(ctx)

		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	bundle, err := utils.LoadI18NBundle(viper.GetString("i18n.dir"))
	if err != nil {
		log.Panicf("load i18n messages with error: %s", err)
	}
	log.WithField("prefix", "init").Info("Loaded i18n messages")

	mongoStore := initMongo(initialCtx)
	app.setMongoStore(mongoStore)

	var catalog store.CityCatalog
	if mongoStore != nil {
		catalog = mongoStore
	}
	resolver := initCityResolver(catalog, httpClient)
	log.WithField("prefix", "init").Info("Initialized city resolver")

	var aqiClient aqi.AQI
	if token := viper.GetString("aqi.token"); token != "" {
		aqiClient = aqi.New(token, viper.GetString("aqi.url"), httpClient)
	}

	// Init http server
	server := api.NewServer(
		resolver,
		mongoStore,
		aqiClient,
		bundle,
		simulate.Options{
			HeatCount:   viper.GetInt("simulation.heat_count"),
			ReportCount: viper.GetInt("simulation.report_count"),
			Radius:      viper.GetFloat64("simulation.radius"),
		})
	app.setServer(server)
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
