package jobhunter

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"strconv"
	"strings"

	gomysql "github.com/go-sql-driver/mysql"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"

	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Mode         string
	ApiPort      string
	RealtimePort string
	LogLevel     string
	MainDatabase struct {
		Driver       string
		Host         string
		Port         string
		User         string
		Password     string
		DatabaseName string
		SSLMode      string
	}
	JWTConfig struct {
		Secret            string
		Expiration        int // in minutes
		RefreshExpiration int // in days
	}
	RedisConfig struct {
		Host           string
		Port           string
		Password       string
		DB             int
		SearchCacheTTL int // in minutes
	}
	NatsConfig struct {
		URL string
	}
	LLMConfig struct {
		Provider     string
		Model        string
		MaxTokens    int
		Temperature  float64
		AnthropicKey string
		OpenAIKey    string
		GeminiKey    string
		OllamaHost   string
	}
	JobSearchConfig struct {
		RapidAPIKey  string
		RapidAPIHost string
	}
}

var config AppConfig

func InitConfig(envfile string) {
	err := godotenv.Load(envfile)
	if err != nil {
		log.Fatal(fmt.Sprintf("Error loading %s file: %s", envfile, err))
	}
	config = AppConfig{
		Mode:         getEnvOrPanic("RUN_MODE"),
		ApiPort:      getEnvOrPanic("API_PORT"),
		RealtimePort: GetEnv("REALTIME_PORT", ":8081"),
		LogLevel:     GetEnv("LOG_LEVEL", "info"),
	}

	config.MainDatabase.Driver = GetEnv("DB_DRIVER", "postgres")
	config.MainDatabase.DatabaseName = getEnvOrPanic("DB_NAME")
	if config.MainDatabase.Driver != "sqlite" {
		config.MainDatabase.Host = getEnvOrPanic("DB_HOSTNAME")
		config.MainDatabase.Port = getEnvOrPanic("DB_PORT")
		config.MainDatabase.User = getEnvOrPanic("DB_USERNAME")
		config.MainDatabase.Password = getEnvOrPanic("DB_PASSWORD")
		config.MainDatabase.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	}

	config.JWTConfig.Secret = getEnvOrPanic("JWT_SECRET")
	config.JWTConfig.Expiration = getIntEnvOrPanic("JWT_EXPIRATION_MINUTES")
	config.JWTConfig.RefreshExpiration = getIntEnvOrPanic("JWT_REFRESH_EXPIRATION_DAYS")

	config.RedisConfig.Host = GetEnv("REDIS_HOST", "")
	config.RedisConfig.Port = GetEnv("REDIS_PORT", "6379")
	config.RedisConfig.Password = GetEnv("REDIS_PASSWORD", "")
	config.RedisConfig.DB = getIntEnvOrDefault("REDIS_DB", 0)
	config.RedisConfig.SearchCacheTTL = getIntEnvOrDefault("SEARCH_CACHE_MINUTES", 10)

	config.NatsConfig.URL = GetEnv("NATS_URL", "")

	config.LLMConfig.Provider = GetEnv("LLM_PROVIDER", "anthropic")
	config.LLMConfig.Model = GetEnv("LLM_MODEL", "")
	config.LLMConfig.MaxTokens = getIntEnvOrDefault("LLM_MAX_TOKENS", 4096)
	config.LLMConfig.Temperature = getFloatEnvOrDefault("LLM_TEMPERATURE", 0.3)
	config.LLMConfig.AnthropicKey = GetEnv("ANTHROPIC_API_KEY", "")
	config.LLMConfig.OpenAIKey = GetEnv("OPENAI_API_KEY", "")
	config.LLMConfig.GeminiKey = GetEnv("GEMINI_API_KEY", "")
	config.LLMConfig.OllamaHost = GetEnv("OLLAMA_HOST", "http://localhost:11434")

	config.JobSearchConfig.RapidAPIKey = GetEnv("RAPIDAPI_KEY", "")
	config.JobSearchConfig.RapidAPIHost = GetEnv("RAPIDAPI_HOST", "jsearch.p.rapidapi.com")

	Logger = initLogger(config.LogLevel)
	DB = connectToDatabase(config.MainDatabase.Driver)
	if config.RedisConfig.Host != "" {
		Redis = connectToRedis(config.RedisConfig.Host, config.RedisConfig.Port, config.RedisConfig.Password, config.RedisConfig.DB)
	}
	if config.NatsConfig.URL != "" {
		Nats = connectToNats(config.NatsConfig.URL)
	}
}

func GetConfig() AppConfig {
	return config
}

func getEnvOrPanic(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("%s must be set", key)
	}
	return value
}

func GetEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnvOrPanic(key string) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		log.Fatalf("%s must be an integer", key)
	}
	return value
}

func getIntEnvOrDefault(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

func getFloatEnvOrDefault(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func connectToDatabase(driver string) *gorm.DB {
	var err error
	var db *gorm.DB
	var conn *sql.DB

	cfg := config.MainDatabase
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			cfg.Host, cfg.User, cfg.Password, cfg.DatabaseName, cfg.Port, cfg.SSLMode)
		dialector = postgres.Open(dsn)
	case "mysql":
		mysqlCfg := gomysql.NewConfig()
		mysqlCfg.User = cfg.User
		mysqlCfg.Passwd = cfg.Password
		mysqlCfg.Net = "tcp"
		mysqlCfg.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
		mysqlCfg.DBName = cfg.DatabaseName
		mysqlCfg.ParseTime = true
		mysqlCfg.Loc = time.UTC
		mysqlCfg.ClientFoundRows = true
		dialector = mysql.Open(mysqlCfg.FormatDSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.DatabaseName)
	default:
		log.Fatalf("unsupported DB_DRIVER %q", driver)
	}

	if db, err = gorm.Open(dialector,
		&gorm.Config{
			Logger: logger.New(
				log.New(os.Stdout, "\r\n", log.LstdFlags),
				logger.Config{
					SlowThreshold:             0,
					LogLevel:                  logger.Error,
					IgnoreRecordNotFoundError: true,
				},
			),
			CreateBatchSize:                          1000,
			TranslateError:                           true,
			DisableForeignKeyConstraintWhenMigrating: true,
			NowFunc: func() time.Time {
				return time.Now().UTC()
			},
			NamingStrategy: schema.NamingStrategy{
				TablePrefix:         "",
				SingularTable:       true,
				NameReplacer:        nil,
				NoLowerCase:         false,
				IdentifierMaxLength: 0,
			}}); err != nil {
		panic(err)
	}
	if conn, err = db.DB(); err != nil {
		panic(err)
	}
	if driver == "sqlite" {
		// a single connection keeps in-memory databases alive and avoids SQLITE_BUSY
		conn.SetMaxOpenConns(1)
		conn.SetConnMaxLifetime(0)
		return db
	}
	conn.SetMaxIdleConns(10)
	conn.SetMaxOpenConns(10)
	conn.SetConnMaxLifetime(time.Hour)
	return db
}

func initLogger(level string) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
		NoColor:    false,
		FormatLevel: func(i interface{}) string {
			return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
		},
		FormatMessage: func(i interface{}) string {
			return fmt.Sprintf("  %s  ", i)
		},
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s=", i)
		},
		FormatFieldValue: func(i interface{}) string {
			return fmt.Sprintf("%s", i)
		},
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(output).Level(lvl).With().Timestamp().Caller().Logger()
}

func connectToRedis(host string, port string, password string, db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}

	return client
}

func connectToNats(url string) *nats.Conn {
	nc, err := nats.Connect(url, nats.Name("jobhunter-api"), nats.MaxReconnects(-1))
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to NATS: %v", err))
	}
	return nc
}
