package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	hf         bool
	configPath string
	logLevel   string
	folder     string
	maxZoom    int
	minZoom    int
)

func InitFlag() {
	flag.BoolVar(&hf, "h", false, "this help")
	flag.StringVar(&configPath, "c", "./conf/conf.toml", "set config `file`")
	flag.StringVar(&logLevel, "l", "info", "set log level (default: info)")
	flag.StringVar(&folder, "f", "", "set tile `folder`, 覆盖配置文件")
	flag.IntVar(&maxZoom, "max", -1, "most detailed zoom level, 覆盖配置文件")
	flag.IntVar(&minZoom, "min", -1, "least detailed zoom level, 覆盖配置文件")
	flag.Usage = usage
	flag.Parse()

	if hf {
		flag.Usage()
		os.Exit(0)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `unzoom version: unzoom/v0.1.0
Usage: unzoom [-h] [-c filename] [-l logLevel] [-f folder] [-max zoom] [-min zoom]
`)
	flag.PrintDefaults()
}
