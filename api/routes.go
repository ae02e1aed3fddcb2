package api

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/credit-server/internal/handlers/v1/report"
	"github.com/carson-networks/credit-server/internal/handlers/v1/status"
	"github.com/carson-networks/credit-server/internal/logging"
	"github.com/carson-networks/credit-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	statusHandler := status.NewHandler()
	reportHandler := report.NewHandler(r.Service.Audit)

	http.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	http.HandleFunc("/v1/report", logging.LoggingWrapper("Report", r.Logger, reportHandler.Handler))

	server := http.Server{
		Addr:              ":" + r.Port,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
