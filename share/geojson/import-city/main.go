package main

import (
	"context"
	"flag"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/healthradar-api/share/geojson"
	"github.com/bitmark-inc/healthradar-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("healthradar")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var geoJSONFile string
	flag.StringVar(&geoJSONFile, "f", "cities.json", "path of a geojson file of city points")
	flag.Parse()

	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	mongoStore := store.NewMongoStore(client, viper.GetString("mongo.database"))
	defer mongoStore.Close()

	n, err := geojson.ImportCities(mongoStore, geoJSONFile)
	if err != nil {
		panic(err)
	}

	log.WithField("prefix", "import").Infof("imported %d cities from %s", n, geoJSONFile)
}
