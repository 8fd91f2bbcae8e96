package config

// BuildVersion is set at build time with -ldflags "-X gitlab.com/TitanInd/sprcalc/internal/config.BuildVersion=..."
var BuildVersion = "0.0.0-dev"
