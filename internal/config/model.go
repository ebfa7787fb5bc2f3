package config

var defaultConfig = Config{
	MaxWindowWidth: 0,
	Tags:           []Tag{},
}

type Config struct {
	// MaxWindowWidth caps per-column width when tiling; 0 means no cap.
	MaxWindowWidth int   `json:"max_window_width" yaml:"max_window_width"`
	Tags           []Tag `json:"tags" yaml:"tags"`
}

type Tag struct {
	UUID              string `json:"uuid" yaml:"uuid"`
	Name              string `json:"name" yaml:"name"`
	Layout            string `json:"layout" yaml:"layout"`
	FlippedHorizontal bool   `json:"flipped_horizontal" yaml:"flipped_horizontal"`
	FlippedVertical   bool   `json:"flipped_vertical" yaml:"flipped_vertical"`
}
