package configs

import (
	"errors"

	"github.com/charlles-dev/Unity-Bank/internal/logger"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	Server struct {
		Addr string `mapstructure:"addr"`
	} `mapstructure:"server"`
	Bank struct {
		Name string `mapstructure:"name"`
		Seed bool   `mapstructure:"seed"`
	} `mapstructure:"bank"`
	JWT struct {
		Secret string `mapstructure:"secret"`
	} `mapstructure:"jwt"`
	Teller struct {
		Name     string `mapstructure:"name"`
		Password string `mapstructure:"password"`
	} `mapstructure:"teller"`
}

var AppConfig Config

func LoadConfig() {
	viper.AddConfigPath("./configs")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("bank.name", "Unity Bank")
	viper.SetDefault("bank.seed", false)
	viper.SetDefault("teller.name", "teller")

	viper.AutomaticEnv()

	var fileLookupError viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil {
		if errors.As(err, &fileLookupError) {
			logger.Log.Fatal("config file not found", zap.Error(err))
		}
		logger.Log.Fatal("failed to read config", zap.Error(err))
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		logger.Log.Fatal("failed to unmarshal config", zap.Error(err))
	}

	if AppConfig.JWT.Secret == "" {
		logger.Log.Fatal("jwt.secret must be set")
	}
	if AppConfig.Teller.Password == "" {
		logger.Log.Fatal("teller.password must be set")
	}
}
