package appcontext

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/verstree/verstree/config"
	"github.com/verstree/verstree/logging"
)

// AppContext bundles what every subcommand needs: the process-wide
// logger, the loaded configuration and a cancellable context.  It
// satisfies context.Context so it can be passed where one is
// expected.
type AppContext struct {
	logger *logging.Logger
	Config *config.Config

	Context context.Context
	Cancel  context.CancelFunc

	Stdout io.Writer
	Stderr io.Writer

	NumCPU          int
	Username        string
	Hostname        string
	CommandLine     string
	OperatingSystem string
	Architecture    string
	ProcessID       int
	CWD             string

	Identity uuid.UUID
}

func NewAppContext() *AppContext {
	ctx, cancel := context.WithCancel(context.Background())

	return &AppContext{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Context:  ctx,
		Cancel:   cancel,
		Identity: uuid.New(),
	}
}

func (c *AppContext) Deadline() (time.Time, bool) {
	return c.Context.Deadline()
}

func (c *AppContext) Done() <-chan struct{} {
	return c.Context.Done()
}

func (c *AppContext) Err() error {
	return c.Context.Err()
}

func (c *AppContext) Value(key any) any {
	return c.Context.Value(key)
}

func (c *AppContext) Close() {
	c.Cancel()
}

func (c *AppContext) SetLogger(logger *logging.Logger) {
	c.logger = logger
}

func (c *AppContext) GetLogger() *logging.Logger {
	return c.logger
}
