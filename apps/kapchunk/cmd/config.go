package kapchunk

import "github.com/spf13/viper"

type KalturaConfig struct {
	PartnerID     string `mapstructure:"partner_id"`
	AppTokenID    string `mapstructure:"app_token_id"`
	AppTokenValue string `mapstructure:"app_token_value"`
	ServiceURL    string `mapstructure:"service_url"`
	ExpirySeconds int    `mapstructure:"expiry_seconds"`
}

type LoaderConfig struct {
	FilterType   string   `mapstructure:"filter_type"`
	FilterValue  string   `mapstructure:"filter_value"`
	URLTemplate  string   `mapstructure:"url_template"`
	Languages    []string `mapstructure:"languages"`
	AllLanguages bool     `mapstructure:"all_languages"`
	ChunkMinutes int      `mapstructure:"chunk_minutes"`
}

type ServerConfig struct {
	Listen string `mapstructure:"listen"`
}

type Config struct {
	Kaltura KalturaConfig `mapstructure:"kaltura"`
	Loader  LoaderConfig  `mapstructure:"loader"`
	Server  ServerConfig  `mapstructure:"server"`
}

func LoadConfig() (*Config, error) {
	var config Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}
