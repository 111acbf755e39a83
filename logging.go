package numint

import (
	"fmt"
	"io"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

var logLevels = map[string]level.Option{
	"debug": level.AllowDebug(),
	"info":  level.AllowInfo(),
	"warn":  level.AllowWarn(),
	"error": level.AllowError(),
}

// NewLogger returns a logfmt logger writing to w, filtered at the provided level.
func NewLogger(w io.Writer, lvl string) (kitlog.Logger, error) {
	opt, ok := logLevels[strings.ToLower(lvl)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown log level '%s'", ErrInvalidArgument, lvl)
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	klog = level.NewFilter(klog, opt)
	return kitlog.With(klog, "ts", kitlog.DefaultTimestampUTC), nil
}
