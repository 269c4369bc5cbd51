package cmd

import (
	"encoding/binary"
	"io"

	"github.com/bnema/logdata/internal/adapters/osuser"
	reportadapter "github.com/bnema/logdata/internal/adapters/render/report"
	"github.com/bnema/logdata/internal/adapters/utmp"
	"github.com/bnema/logdata/internal/application"
	"github.com/bnema/logdata/internal/ports"
	"github.com/rs/zerolog"
)

type recordSource interface {
	ports.RecordSource
	io.Closer
}

type app struct {
	clock        ports.Clock
	users        ports.UserResolver
	openSource   func(path string, order binary.ByteOrder, logger zerolog.Logger) (recordSource, error)
	textRenderer func(application.Report, reportadapter.RenderOptions) (string, error)
}

func wireApp() *app {
	return &app{
		clock: ports.SystemClock{},
		users: osuser.NewResolver(),
		openSource: func(path string, order binary.ByteOrder, logger zerolog.Logger) (recordSource, error) {
			reader, err := utmp.Open(path, order, logger)
			if err != nil {
				return nil, err
			}
			return reader, nil
		},
		textRenderer: reportadapter.Render,
	}
}

func (a *app) service(logger zerolog.Logger) *application.Service {
	return application.NewService(a.clock, a.users, logger)
}
