package algodht

import "go.uber.org/zap"

// noplog is the default logger when Options.Logger is nil.
var noplog = zap.NewNop()

func orNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return noplog
	}
	return l
}
