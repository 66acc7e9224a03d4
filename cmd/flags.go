package cmd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlags makes the named flags visible to viper under prefix.name so that
// a config file or GOSURF_PREFIX_NAME can supply their defaults.
func bindFlags(fs *pflag.FlagSet, prefix string, names ...string) {
	for _, name := range names {
		key := name
		if prefix != "" {
			key = prefix + "." + name
		}
		if err := viper.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(err)
		}
	}
}
