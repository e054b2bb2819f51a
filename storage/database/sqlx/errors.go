package sqlxrepos

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/trezcool/ripoti/core"
)

// dbErr maps pool faults the driver cannot recover from to a shutdown error
// so the server stops serving instead of failing every request.
func dbErr(err error) error {
	if errors.Cause(err) == sql.ErrConnDone {
		return core.NewShutdownError(err.Error())
	}
	return err
}
