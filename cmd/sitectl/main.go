package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/gofiber/fiber/v2"
	router "github.com/goliatone/go-router"
	"go.uber.org/zap"

	"github.com/goliatone/go-sitecontent/components/sitecontent"
	"github.com/goliatone/go-sitecontent/components/sitecontent/gorouter"
	"github.com/goliatone/go-sitecontent/components/sitecontent/httpapi"
	"github.com/goliatone/go-sitecontent/components/sitecontent/queries"
	"github.com/goliatone/go-sitecontent/internal/config"
	"github.com/goliatone/go-sitecontent/pkg/logging"
)

type cli struct {
	Config   string      `type:"path" short:"c" help:"Path to the sitectl YAML configuration."`
	Serve    serveCmd    `cmd:"" help:"Serve the content admin over HTTP."`
	Export   exportCmd   `cmd:"" help:"Write a content document (default content when no input is given)."`
	Validate validateCmd `cmd:"" help:"Validate a content document against the section schemas."`
}

type serveCmd struct {
	Address string `help:"Listen address (overrides configuration)."`
	Content string `type:"path" help:"Content document to load and persist (overrides configuration)."`
}

type exportCmd struct {
	Input  string `type:"path" help:"Existing content document to re-encode."`
	Output string `type:"path" help:"Destination file; format follows the extension. Writes YAML to stdout when empty."`
	Format string `enum:"yaml,json" default:"yaml" help:"Encoding used for stdout."`
}

type validateCmd struct {
	Path string `arg:"" type:"existingfile" help:"Content document to check."`
}

func main() {
	var app cli
	ctx := kong.Parse(&app,
		kong.Name("sitectl"),
		kong.Description("Content admin server and tooling for the STRATRI site."),
		kong.UsageOnError(),
	)
	cfg, err := config.Load(app.Config)
	ctx.FatalIfErrorf(err)
	logger, err := logging.New(cfg.Logging)
	ctx.FatalIfErrorf(err)
	defer func() { _ = logger.Sync() }()

	ctx.Bind(cfg)
	ctx.Bind(logger)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func (cmd *serveCmd) Run(cfg config.Config, logger *zap.Logger) error {
	if cmd.Address != "" {
		cfg.Server.Address = cmd.Address
	}
	if cmd.Content != "" {
		cfg.Content.Path = cmd.Content
	}

	initial, err := loadInitial(cfg.Content.Path)
	if err != nil {
		return err
	}

	telemetry := logging.NewTelemetry(logger)
	hook := sitecontent.NewBroadcastHook()
	host := sitecontent.MultiHost{
		hook,
		sitecontent.HostFuncs{
			OnExitToSite: func(context.Context) { logger.Info("editor exited to site") },
			OnLogout:     func(context.Context) { logger.Info("editor logged out") },
		},
	}
	var persister sitecontent.Persister
	if cfg.Content.Path != "" {
		persister = sitecontent.FilePersister{Path: cfg.Content.Path}
	}

	service := sitecontent.NewService(sitecontent.Options{
		Initial:   initial,
		Host:      host,
		Persister: persister,
		Telemetry: telemetry,
		Logger:    logger,
		Strict:    cfg.Admin.Strict,
	})
	library := service.Library(sitecontent.LibraryOptions{
		CopiedTTL:      cfg.Admin.CopiedTTL,
		MaxUploadBytes: cfg.Images.MaxUploadBytes,
	})
	defer library.Close()

	api := httpapi.NewHandlers(service, library, telemetry, logger)
	api.Lookup = queries.NewImageLookupQuery(sitecontent.PlaceholderSearch{
		BaseURL: cfg.Images.SearchBaseURL,
		Width:   cfg.Images.SearchWidth,
		Height:  cfg.Images.SearchHeight,
	})

	server := router.NewFiberAdapter()
	if err := gorouter.Register(gorouter.Config[*fiber.App]{
		Router: server.Router(),
		Controller: sitecontent.NewController(sitecontent.ControllerOptions{
			Service: service,
			Locale:  cfg.Admin.Locale,
		}),
		API:       api,
		Broadcast: hook,
		BasePath:  cfg.Server.BasePath,
	}); err != nil {
		return fmt.Errorf("sitectl: register routes: %w", err)
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("content admin listening",
			zap.String("address", cfg.Server.Address),
			zap.String("base_path", cfg.Server.BasePath),
		)
		errCh <- server.Serve(cfg.Server.Address)
	}()

	select {
	case err := <-errCh:
		return err
	case <-sigCtx.Done():
	}
	receipt, err := service.Save(context.Background())
	if err != nil {
		return fmt.Errorf("sitectl: save on shutdown: %w", err)
	}
	logger.Info("shutting down",
		zap.Uint64("revision", receipt.Revision),
		zap.Bool("persisted", receipt.Changed),
	)
	return nil
}

func (cmd *exportCmd) Run(_ config.Config, logger *zap.Logger) error {
	doc := sitecontent.NewContentDocument(sitecontent.DefaultContent(), 0)
	if cmd.Input != "" {
		loaded, err := sitecontent.ReadContentFile(cmd.Input)
		if err != nil {
			return err
		}
		doc = *loaded
		doc.Source = ""
	}
	if cmd.Output != "" {
		if err := sitecontent.WriteContentFile(cmd.Output, doc); err != nil {
			return err
		}
		logger.Info("content exported", zap.String("path", cmd.Output))
		return nil
	}
	return encodeTo(os.Stdout, cmd.Format, doc)
}

func (cmd *validateCmd) Run(_ config.Config, logger *zap.Logger) error {
	doc, err := sitecontent.ReadContentFile(cmd.Path)
	if err != nil {
		return err
	}
	if err := doc.Validate(sitecontent.NewRegistry(), sitecontent.NewJSONSchemaValidator()); err != nil {
		return fmt.Errorf("sitectl: %s is invalid: %w", cmd.Path, err)
	}
	logger.Info("content valid", zap.String("path", cmd.Path), zap.Uint64("revision", doc.Revision))
	fmt.Fprintf(os.Stdout, "✓ %s is valid\n", cmd.Path)
	return nil
}

func encodeTo(w io.Writer, format string, doc sitecontent.ContentDocument) error {
	if strings.EqualFold(format, "json") {
		return sitecontent.EncodeJSON(w, doc)
	}
	return sitecontent.EncodeYAML(w, doc)
}

func loadInitial(path string) (*sitecontent.SiteContent, error) {
	if path == "" {
		return nil, nil
	}
	doc, err := sitecontent.ReadContentFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(sitecontent.NewRegistry(), sitecontent.NewJSONSchemaValidator()); err != nil {
		return nil, fmt.Errorf("sitectl: %s is invalid: %w", path, err)
	}
	return &doc.Content, nil
}
