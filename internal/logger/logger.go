// Package logger provides a configured zerolog logger.
package logger

import (
	"os"
	"sync"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
)

var stackSetup sync.Once

// New returns a zerolog.Logger tagged with the service name. Error events
// logged with .Stack() include a marshaled stack trace; std errors are
// wrapped with pkg/errors on the fly so the stack is always present.
func New(serviceName string) zerolog.Logger {
	stackSetup.Do(func() {
		zerolog.ErrorStackMarshaler = func(err error) interface{} {
			type stackTracer interface{ StackTrace() pkgerrors.StackTrace }
			if _, ok := err.(stackTracer); !ok {
				err = pkgerrors.WithStack(err)
			}
			return zpkgerrors.MarshalStack(err)
		}
	})

	return zerolog.New(os.Stdout).With().
		Str("service", serviceName).
		Timestamp().
		Logger()
}
