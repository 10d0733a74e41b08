package htmlmask

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'groupmask'
func tracer() tracing.Trace {
	return tracing.Select("groupmask")
}
