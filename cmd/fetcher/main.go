package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/andrewyi/helpimages/src/server"
)

func main() {
	os.Exit(run(os.Args))
}

// 只有配置加载、输出目录创建等启动错误返回非0，下载失败不影响退出码
func run(args []string) int {
	app := cli.NewApp()

	app.Name = "fetcher"
	app.Version = "0.1.0"
	app.Usage = "download the images referenced by help article records"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config,c",
			Usage: "config file, built-in defaults are used when empty",
			Value: "",
		},
	}

	s := server.NewServer()
	app.Action = s.Start

	if err := app.Run(args); err != nil {
		fmt.Println(err)
		return 1
	}
	return 0
}
