package types

import (
	"github.com/kysee/ztx/utils"
	"github.com/rs/zerolog"
)

var logger = utils.NewLogger(zerolog.InfoLevel)

func SetLogger(l zerolog.Logger) {
	logger = l
}
