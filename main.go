package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fiorix/wscontract/config"
)

var version = "tip"

var cfgFile string

// settings of the running command, loaded before it runs.
var settings *config.Config

var rootCmd = &cobra.Command{
	Use:   "wscontract",
	Short: "Resolve the wire contract of annotated web service interfaces",
	Long: `wscontract reads declarations of annotated web service interfaces and
resolves the messages of their operations: the role, element and type of
every part and the client classname of every typed part. It describes the
result as YAML or JSON, or generates the WSDL document of an interface.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initConfig)
	v := viper.GetViper()
	config.SetDefaults(v)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/"+config.Name+".yaml)")
	flags.Bool(config.KeyDebug, false, "Use debug level logging")
	flags.Bool(config.KeyPretty, true, "Use pretty logging instead JSON")
	flags.Bool(config.KeyGenerics, true, "Emit type arguments in client classnames")
	flags.String(config.KeyAdapters, config.AdaptersAuto, "Apply XML adapters to client classnames: auto, on or off")
	flags.StringSlice("conversion", nil, "Convert a client package, as from=to (repeatable)")
	for _, k := range []string{config.KeyDebug, config.KeyPretty, config.KeyGenerics, config.KeyAdapters} {
		cobra.CheckErr(v.BindPFlag(k, flags.Lookup(k)))
	}
	cobra.CheckErr(v.BindPFlag(config.KeyConversions, flags.Lookup("conversion")))

	rootCmd.AddCommand(genCmd, describeCmd, versionCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	cobra.CheckErr(config.ReadInConfig(viper.GetViper(), cfgFile))
}

func setup(cmd *cobra.Command, args []string) error {
	c, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	settings = c
	if c.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	if c.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	return nil
}
