package main

import (
	"errors"

	"github.com/custodia-labs/vibepad/internal/adapters/driven/clipboard"
	"github.com/custodia-labs/vibepad/internal/adapters/driven/config/file"
	"github.com/custodia-labs/vibepad/internal/adapters/driven/formatter/markdownfmt"
	"github.com/custodia-labs/vibepad/internal/adapters/driven/renderer/html"
	"github.com/custodia-labs/vibepad/internal/adapters/driven/renderer/terminal"
	"github.com/custodia-labs/vibepad/internal/adapters/driven/secrets/keyring"
	"github.com/custodia-labs/vibepad/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/vibepad/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/vibepad/internal/adapters/driving/cli"
	"github.com/custodia-labs/vibepad/internal/core/domain"
	"github.com/custodia-labs/vibepad/internal/core/ports/driven"
	"github.com/custodia-labs/vibepad/internal/core/services"
	"github.com/custodia-labs/vibepad/internal/logger"
	"github.com/custodia-labs/vibepad/internal/normalisers/markdown"
)

// Availability checks for optional system integrations. Replaced in tests.
var (
	keyringAvailable   = keyring.Available
	clipboardAvailable = clipboard.Available
)

// bootstrap wires the driven adapters into the core services.
// Storage that cannot be opened degrades to memory so the editors still work.
func bootstrap(opts cli.Options) (*cli.Services, func() error, error) {
	logger.Section("bootstrap")
	defer logger.Timed("bootstrap")()

	var closers []func() error
	cleanup := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i]())
		}
		return errors.Join(errs...)
	}

	var configStore driven.ConfigStore
	fileConfig, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		logger.Warn("config file unavailable, settings will not persist: %v", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileConfig
	}

	var docStore driven.DocumentStore
	db, err := sqlite.NewStore(opts.DataDir)
	if err != nil {
		logger.Warn("database unavailable, documents will not persist: %v", err)
		docStore = memory.NewDocumentStore()
	} else {
		docStore = db.DocumentStore()
		closers = append(closers, db.Close)
	}

	var secretStore driven.SecretStore
	if keyringAvailable() {
		logger.Debug("using system keyring")
		secretStore = keyring.New(keyring.DefaultService)
	} else {
		logger.Debug("no system keyring, storing secrets in the config file")
		secretStore = file.NewSecretStore(configStore)
	}

	var clip driven.Clipboard
	if clipboardAvailable() {
		clip = clipboard.New()
	} else {
		logger.Debug("no clipboard utility found, using a process clipboard")
		clip = clipboard.NewMemory()
	}

	settingsService := services.NewSettingsService(configStore)

	markdownService := services.NewMarkdownService(markdown.New(), markdownfmt.New(), docStore)
	markdownService.SetRenderer(domain.RenderHTML, html.New())

	svc := &cli.Services{
		Markdown:    markdownService,
		JSON:        services.NewJSONService(nil),
		Settings:    settingsService,
		Credentials: services.NewCredentialsService(secretStore),
		Workspace:   services.NewWorkspaceService(docStore),
		Clipboard:   clip,
	}

	theme := settingsService.Get().Theme.Display()
	termRenderer, err := terminal.New(theme, terminal.DefaultWidth)
	if err != nil {
		logger.Warn("terminal renderer unavailable: %v", err)
	} else {
		markdownService.SetRenderer(domain.RenderTerminal, termRenderer)
		svc.TerminalRenderer = termRenderer
	}

	return svc, cleanup, nil
}
