package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

var conf *Conf

type Conf struct {
	App struct {
		Version string `toml:"version"`
		Title   string `toml:"title"`
	} `toml:"app"`
	Output struct {
		LogDir         string `toml:"logDir"`
		OutputTerminal bool   `toml:"outputTerminal"`
	} `toml:"output"`
	Task struct {
		Workers int `toml:"workers"`
	} `toml:"task"`
	Ts struct {
		Name   string `toml:"name"`
		Folder string `toml:"folder"`
		Min    int    `toml:"min"`
		Max    int    `toml:"max"`
		Format string `toml:"format"`
	} `toml:"ts"`
}

// InitConf 初始化配置
func InitConf(cfgFile string) {
	if cfgFile == "" {
		cfgFile = "conf.toml"
	}
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		fmt.Printf("config file(%s) not exist", cfgFile)
		os.Exit(1)
	}
	viper.SetConfigType("toml")
	viper.SetConfigFile(cfgFile)
	viper.AutomaticEnv() // read in environment variables that match
	err := viper.ReadInConfig()
	if err != nil {
		log.Warnf("read config file(%s) error, details: %s", viper.ConfigFileUsed(), err)
	}
	// 设置默认值
	viper.SetDefault("app.version", "v 0.1.0")
	viper.SetDefault("app.title", "MapCloud Unzoom")
	viper.SetDefault("output.outputTerminal", true)
	viper.SetDefault("task.workers", 4)
	viper.SetDefault("ts.name", "tiles")
	viper.SetDefault("ts.min", ZoomMin)
	viper.SetDefault("ts.max", ZoomMax)
	viper.SetDefault("ts.format", PNG)

	err = viper.Unmarshal(&conf)
	if err != nil {
		panic("配置文件解析失败")
	}

	// 控制台参数覆盖配置文件
	if folder != "" {
		conf.Ts.Folder = folder
	}
	if maxZoom >= 0 {
		conf.Ts.Max = maxZoom
	}
	if minZoom >= 0 {
		conf.Ts.Min = minZoom
	}
}
