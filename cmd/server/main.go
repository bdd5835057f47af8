package main

import (
	"github.com/leonf08/building-metrics.git/internal/app/serverapp"
	"github.com/leonf08/building-metrics.git/internal/config/serverconf"
)

func main() {
	if err := serverapp.Run(serverconf.MustLoadConfig()); err != nil {
		panic(err)
	}
}
