//go:build !gmp || !cgo

package bigint

import "errors"

var errGMPNotBuilt = errors.New("not compiled in (build with -tags gmp and CGO_ENABLED=1)")

func probeGMP() error { return errGMPNotBuilt }

func newGMPEngine() (Engine, error) { return nil, errGMPNotBuilt }
