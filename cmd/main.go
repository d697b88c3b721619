package main

import (
	"github.com/avetra-labs/oms/internal/app"
	"github.com/avetra-labs/oms/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
