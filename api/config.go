package api

import (
	"sync"

	"github.com/alex-pricope/ideathon-voting-system/logging"
	"github.com/spf13/viper"
)

type Config struct {
	StorageConfig
	ServerConfig
	VotingConfig
}

type StorageConfig struct {
	TableNameVoters       string
	TableNameTeams        string
	TableNameEvents       string
	TableNameTransactions string
	TableNameJuryScores   string
	TableNameCriteria     string
}

type ServerConfig struct {
	Port int
}

// VotingConfig holds the event-independent voting defaults. Events can
// override the portfolio size; the blend weights and rank multipliers are
// deployment-wide so leaderboards stay comparable.
type VotingConfig struct {
	PortfolioSize    int
	JuryWeight       float64
	InvestmentWeight float64
	RankMultipliers  []int
}

var settingsOnce sync.Once

func ReadConfig() *Config {

	var conf = &Config{
		StorageConfig: StorageConfig{
			TableNameVoters:       viper.GetString("storage.TableNameVoters"),
			TableNameTeams:        viper.GetString("storage.TableNameTeams"),
			TableNameEvents:       viper.GetString("storage.TableNameEvents"),
			TableNameTransactions: viper.GetString("storage.TableNameTransactions"),
			TableNameJuryScores:   viper.GetString("storage.TableNameJuryScores"),
			TableNameCriteria:     viper.GetString("storage.TableNameCriteria"),
		},
		ServerConfig: ServerConfig{
			Port: viper.GetInt("server.port"),
		},
		VotingConfig: VotingConfig{
			PortfolioSize:    getIntOrDefault("voting.PortfolioSize", 3),
			JuryWeight:       getFloatOrDefault("voting.JuryWeight", 0.7),
			InvestmentWeight: getFloatOrDefault("voting.InvestmentWeight", 0.3),
			RankMultipliers:  getIntSliceOrDefault("voting.RankMultipliers", []int{3, 2, 1}),
		},
	}

	settingsOnce.Do(func() {
		logging.Log.Print("Reading settings!")
	})

	return conf
}

func getIntOrDefault(name string, def int) int {
	if viper.IsSet(name) {
		v := viper.GetInt(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getFloatOrDefault(name string, def float64) float64 {
	if viper.IsSet(name) {
		v := viper.GetFloat64(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}

func getIntSliceOrDefault(name string, def []int) []int {
	if viper.IsSet(name) {
		v := viper.GetIntSlice(name)
		logging.Log.Printf("found '%s' in viper", name)
		return v
	}
	logging.Log.Printf("could not find '%s' in viper! Returning default", name)
	return def
}
