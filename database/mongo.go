package database

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

type Config struct {
	URI    string
	DBName string
	Port   string
}

func LoadConfig() Config {
	cfg := Config{
		URI:    os.Getenv("MONGO_URI"),
		DBName: os.Getenv("DB_NAME"),
		Port:   os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}
	return cfg
}

// ConnectMongo connects and pings; the server cannot do anything
// useful without storage, so failures are fatal.
func ConnectMongo(cfg Config) *mongo.Client {
	if cfg.URI == "" || cfg.DBName == "" {
		log.Fatal("MONGO_URI or DB_NAME not set in environment")
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	client, err := mongo.Connect(opts)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	if err := client.Ping(context.TODO(), readpref.Primary()); err != nil {
		log.WithError(err).Fatal("failed to ping MongoDB")
	}

	log.Info("connected to MongoDB")
	return client
}

func DisconnectMongo(client *mongo.Client) {
	if err := client.Disconnect(context.TODO()); err != nil {
		log.WithError(err).Warn("mongo disconnect failed")
	}
}
