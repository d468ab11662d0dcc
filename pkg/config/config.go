package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Port                string `mapstructure:"PORT"`
	MongoURI            string `mapstructure:"MONGO_URI"`
	MongoDatabase       string `mapstructure:"MONGO_DATABASE"`
	CloudinaryCloudName string `mapstructure:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `mapstructure:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `mapstructure:"CLOUDINARY_API_SECRET"`
	RabbitMQURL         string `mapstructure:"RABBITMQ_URL"`
	ServiceName         string `mapstructure:"SERVICE_NAME"`
}

func Read() *AppConfig {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	_ = viper.ReadInConfig()

	viper.AutomaticEnv()

	bindEnvVariables()
	setDefaults()

	var appConfig AppConfig
	err := viper.Unmarshal(&appConfig)
	if err != nil {
		panic(fmt.Errorf("fatal error unmarshalling config: %w", err))
	}

	return &appConfig
}

func bindEnvVariables() {
	_ = viper.BindEnv("PORT")
	_ = viper.BindEnv("MONGO_URI")
	_ = viper.BindEnv("MONGO_DATABASE")
	_ = viper.BindEnv("CLOUDINARY_CLOUD_NAME")
	_ = viper.BindEnv("CLOUDINARY_API_KEY")
	_ = viper.BindEnv("CLOUDINARY_API_SECRET")
	_ = viper.BindEnv("RABBITMQ_URL")
	_ = viper.BindEnv("SERVICE_NAME")
}

func setDefaults() {
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DATABASE", "freezer")
	viper.SetDefault("SERVICE_NAME", "freezer")
}
