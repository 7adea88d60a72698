// @title Ideathon Voting System API
// @version 1.0
// @description Backend API for phase-driven ideathon events: portfolio voting, jury scoring and blended leaderboards

// @securityDefinitions.apikey AdminToken
// @in header
// @name x-admin-token
package main

import (
	_ "github.com/alex-pricope/ideathon-voting-system/docs"

	"github.com/alex-pricope/ideathon-voting-system/api"
	"github.com/alex-pricope/ideathon-voting-system/logging"
	"github.com/spf13/viper"
)

func main() {
	logging.BoostrapLogger()

	// Load env
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logging.Log.Errorf("Failed to read config file: %v", err)
		panic("Failed to read config file: " + err.Error())
	}

	// Read config
	config := api.ReadConfig()

	// Start the service (inside the lambda)
	service := api.NewServer(config)
	service.Start()
}
