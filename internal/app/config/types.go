package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp091.Connection
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	InternalConfig struct {
		App            App
		JWT            JWT
		PaymentGateway PaymentGateway
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	App struct {
		Env               string
		Port              string
		Version           string
		Timezone          string
		EndpointPrefix    string
		MaxRequests       int
		ShutdownTimeout   int
		BookingEventQueue string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	PaymentGateway struct {
		BaseUrl   string
		KeyID     string
		KeySecret string
		Currency  string
	}
)
