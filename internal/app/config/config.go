package config

import (
	"medibook-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medibook"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:               utils.GetEnvString("APP_ENV", "development"),
			Port:              utils.GetEnvString("APP_PORT", ":8080"),
			Version:           utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:          utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			EndpointPrefix:    utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:       utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			BookingEventQueue: utils.GetEnvString("APP_BOOKING_EVENT_QUEUE", "booking_events_queue"),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
		PaymentGateway: PaymentGateway{
			BaseUrl:   utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "https://api.razorpay.com/v1"),
			KeyID:     utils.GetEnvString("PAYMENT_GATEWAY_KEY_ID", ""),
			KeySecret: utils.GetEnvString("PAYMENT_GATEWAY_KEY_SECRET", ""),
			Currency:  utils.GetEnvString("PAYMENT_GATEWAY_CURRENCY", "INR"),
		},
	}
}
