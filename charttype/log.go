package charttype

import (
	"github.com/vdobler/chartarea"
	"go.uber.org/zap"
)

// Logger returns the logger of the chart types. It follows the logger set
// with chartarea.SetLogger.
func Logger() *zap.Logger { return chartarea.Logger("charttype") }
