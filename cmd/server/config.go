package main

import "github.com/spf13/viper"

func setDefaults() {
	viper.SetDefault("addr", ":8080")
	viper.SetDefault("db_path", "db/thudong.db")
	viper.SetEnvPrefix("survey")
	viper.AutomaticEnv()
}
