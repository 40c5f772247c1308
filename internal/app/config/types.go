package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
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
		Port     string
		Host     string
		Username string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type InternalConfig struct {
	App App
	JWT JWT
	AI  AI
}

type App struct {
	Env             string
	Port            string
	Version         string
	Timezone        string
	EndpointPrefix  string
	MaxRequests     int
	ShutdownTimeout int

	// Fixed-window limiter settings for the inference endpoints.
	RateLimiterBackend         string
	DiagnosisRateLimit         int
	DiagnosisRateWindowSeconds int

	// Uniform bound for outbound record-store calls.
	StoreTimeoutInSeconds int
}

type JWT struct {
	Secret string
}

type AI struct {
	BaseUrl                 string
	APIKey                  string
	Model                   string
	RequestTimeoutInSeconds int
}
