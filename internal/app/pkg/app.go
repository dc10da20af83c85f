package pkg

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipment_erp/internal/app/config"
	"shipment_erp/internal/app/handler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.Handler
	closers []io.Closer
	jobs    []Job
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.Handler) *Application {
	return &Application{
		Config:  c,
		Router:  r,
		Handler: h,
	}
}

// OnShutdown registers resources closed after the server stops, last
// registered first.
func (a *Application) OnShutdown(closers ...io.Closer) {
	a.closers = append(a.closers, closers...)
}

// Schedule adds background jobs started together with the server.
func (a *Application) Schedule(jobs ...Job) {
	a.jobs = append(a.jobs, jobs...)
}

// RunApp serves until SIGINT/SIGTERM, then drains requests and releases
// resources.
func (a *Application) RunApp() {
	logrus.Info("Server start up")

	a.Handler.SetupRoutes(a.Router)

	scheduler, err := StartScheduler(a.jobs...)
	if err != nil {
		logrus.Fatalf("error starting scheduler: %v", err)
	}

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("listening on %s", serverAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logrus.Errorf("server shutdown: %v", err)
	}
	<-scheduler.Stop().Done()

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			logrus.Warnf("close: %v", err)
		}
	}
	logrus.Info("Server down")
}
