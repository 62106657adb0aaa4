package config

type (
	DriverConfig struct {
		Redis    Redis
		RabbitMQ RabbitMQ
		Logger   Logger
	}

	Redis struct {
		Enabled  bool
		Host     string
		Port     string
		Password string
		DB       int
	}

	RabbitMQ struct {
		Enabled  bool
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
)

type (
	InternalConfig struct {
		App     App
		Backend Backend
		Booking Booking
		Session Session
	}

	App struct {
		Env                      string
		Port                     string
		Version                  string
		Timezone                 string
		EndpointPrefix           string
		MaxRequests              int
		ShutdownTimeoutInSeconds int
	}

	// Backend describes the remote scheduling REST API.
	Backend struct {
		BaseUrl                 string
		RequestTimeoutInSeconds int
		MaxRequestsPerSecond    float64
		MaxBurst                int
	}

	Booking struct {
		SlotLockTTLInSeconds        int
		ReservationMaxRetries       int
		ReservationInitialBackoffMs int
		EventsQueue                 string
	}

	Session struct {
		IdleTimeoutInMinutes int
		SweepCronSpec        string
	}
)
