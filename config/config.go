package config

import (
	"github.com/crowdfundV1/global"
	viper2 "github.com/spf13/viper"
)

func Get(key string) interface{} {
	viper := viper2.New()
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(global.RootDir + "/config/")

	if err := viper.ReadInConfig(); err != nil {
		panic(err.Error())
	}
	return viper.Get(key)
}

func GetString(key string) string {
	viper := viper2.New()
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(global.RootDir + "/config/")

	if err := viper.ReadInConfig(); err != nil {
		panic(err.Error())
	}
	return viper.GetString(key)
}

func GetInt64(key string) int64 {
	viper := viper2.New()
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(global.RootDir + "/config/")

	if err := viper.ReadInConfig(); err != nil {
		panic(err.Error())
	}
	return viper.GetInt64(key)
}
