package connectors

import (
	"github.com/TimohUSik/SkidkiSteamBot/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
