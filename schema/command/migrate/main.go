package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/healthradar-api/schema"
	"github.com/bitmark-inc/healthradar-api/store"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("healthradar")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()

	if err := migrateMongo(); nil != err {
		panic(err)
	}
}

func migrateMongo() error {
	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(1)
	client, err := mongo.NewClient(opts)
	if err != nil {
		return err
	}
	if err := client.Connect(ctx); err != nil {
		return err
	}

	mongoStore := store.NewMongoStore(client, viper.GetString("mongo.database"))
	defer mongoStore.Close()

	if err := setupCollectionCity(mongoStore); err != nil {
		fmt.Println("failed to set up collection `city`: ", err)
		return err
	}

	return nil
}

// setupCollectionCity seeds the catalog with the built-in cities. Saving is
// an upsert so the migration can run repeatedly.
func setupCollectionCity(catalog store.CityCatalog) error {
	fmt.Println("initialize city collection")
	return catalog.SaveCities(schema.Cities)
}
