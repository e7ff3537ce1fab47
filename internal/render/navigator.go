package render

import "go.uber.org/zap"

// LogNavigator records navigation requests; the daemon has no views to open
type LogNavigator struct {
	logger *zap.Logger
}

func NewLogNavigator(logger *zap.Logger) *LogNavigator {
	return &LogNavigator{logger: logger}
}

func (n *LogNavigator) OpenArtist(id int64, name string) {
	n.logger.Info("Open artist", zap.Int64("id", id), zap.String("name", name))
}

func (n *LogNavigator) OpenAlbum(id int64, name string) {
	n.logger.Info("Open album", zap.Int64("id", id), zap.String("name", name))
}
