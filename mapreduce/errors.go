package mapreduce

import "golang.org/x/xerrors"

// ConfigurationError reports an invalid Configure call (a worker
// count out of range, or a missing map/reduce callback), or a Run
// call made before Configure.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "mapreduce: invalid configuration: " + e.Reason
}

// ErrEmptyInput is returned by Run when no input has been ingested;
// in that case no worker is spawned.
var ErrEmptyInput = xerrors.New("mapreduce: run called with empty input")
