package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/gin-gonic/gin"
	"github.com/nikolayk812/swiftcart/internal/handler"
	"github.com/nikolayk812/swiftcart/internal/repository"
	"github.com/nikolayk812/swiftcart/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cobra.Command {
	var runLambda bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			pool, err := connect(ctx, cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			store := repository.NewStore(pool)
			router := handler.NewRouter(handler.Services{
				Orders:    service.NewOrderService(store, logger),
				Carts:     service.NewCartService(store, logger),
				Products:  service.NewProductService(store),
				Customers: service.NewCustomerService(store, logger),
			}, logger)

			if runLambda {
				adapter := ginadapter.New(router)
				lambda.StartWithOptions(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
					return adapter.ProxyWithContext(ctx, req)
				}, lambda.WithContext(ctx))
				return nil
			}

			return listen(ctx, cfg.HTTPAddr, router, logger)
		},
	}

	cmd.Flags().BoolVar(&runLambda, "lambda", false, "serve API Gateway proxy events instead of listening on HTTP_ADDR")
	return cmd
}

// listen serves until ctx is cancelled, then drains in-flight requests.
func listen(ctx context.Context, addr string, router *gin.Engine, logger logrus.FieldLogger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithField("addr", addr).Info("http server started")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("srv.Shutdown: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
