package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/healthradar-api/consts"
	"github.com/bitmark-inc/healthradar-api/schema"
)

var (
	ErrCityNotFound = fmt.Errorf("city not found")
	ErrEmptyCity    = fmt.Errorf("empty city name")
)

// CityCatalog - city locations kept in mongo
type CityCatalog interface {
	ListCities() ([]schema.City, error)
	FindCity(name string) (schema.City, error)
	SaveCities(cities []schema.City) error
}

// cityDocument is the stored form of a city. Key is the folded name so
// lookups ignore case and diacritics.
type cityDocument struct {
	Name     string         `bson:"name"`
	Key      string         `bson:"key"`
	Location schema.GeoJSON `bson:"location"`
	Zoom     int            `bson:"zoom"`
}

func newCityDocument(c schema.City) cityDocument {
	return cityDocument{
		Name:     c.Name,
		Key:      consts.FoldName(c.Name),
		Location: schema.NewPoint(c.Center),
		Zoom:     c.Zoom,
	}
}

func (d cityDocument) city() schema.City {
	c := schema.City{Name: d.Name, Zoom: d.Zoom}
	if len(d.Location.Coordinates) == 2 {
		c.Center = schema.GeoPoint{d.Location.Coordinates[0], d.Location.Coordinates[1]}
	}
	if c.Zoom == 0 {
		c.Zoom = schema.DefaultZoom
	}
	return c
}

func (m *mongoDB) ListCities() ([]schema.City, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CityCollection)
	cursor, err := c.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	cities := make([]schema.City, 0)
	for cursor.Next(ctx) {
		var d cityDocument
		if err := cursor.Decode(&d); err != nil {
			return nil, err
		}
		cities = append(cities, d.city())
	}

	return cities, cursor.Err()
}

func (m *mongoDB) FindCity(name string) (schema.City, error) {
	key := consts.FoldName(name)
	if key == "" {
		return schema.City{}, ErrEmptyCity
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CityCollection)

	var d cityDocument
	if err := c.FindOne(ctx, bson.M{"key": key}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return schema.City{}, ErrCityNotFound
		}
		return schema.City{}, err
	}

	return d.city(), nil
}

// SaveCities upserts cities by their folded name
func (m *mongoDB) SaveCities(cities []schema.City) error {
	if len(cities) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, 0, len(cities))
	for _, city := range cities {
		if city.Name == "" {
			return ErrEmptyCity
		}
		d := newCityDocument(city)
		models = append(models, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"key": d.Key}).
			SetReplacement(d).
			SetUpsert(true))
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CityCollection)
	result, err := c.BulkWrite(ctx, models, options.BulkWrite().SetOrdered(false))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("save cities")
		return err
	}

	log.WithFields(log.Fields{
		"prefix":   mongoLogPrefix,
		"upserted": result.UpsertedCount,
		"modified": result.ModifiedCount,
	}).Info("saved cities")

	return nil
}
