// Command optimization-service runs the workforce-scheduling optimizer as
// an HTTP daemon.
package main

import (
	"flag"
	"net/http"
	"os"
	"strings"

	"github.com/golang/glog"

	"github.com/Kamul-droid/Scheduler/internal/api"
	"github.com/Kamul-droid/Scheduler/internal/config"
)

func main() {
	defer glog.Flush()

	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		glog.Exitf("loading configuration: %v", err)
	}
	if err := flag.Set("stderrthreshold", strings.ToUpper(cfg.LogLevel)); err != nil {
		glog.Warningf("logLevel %q not a valid glog severity: %v", cfg.LogLevel, err)
	}

	app := api.NewApp(cfg)

	glog.Infof("optimization-service listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, app); err != nil {
		glog.Exitf("server exited: %v", err)
	}
}
