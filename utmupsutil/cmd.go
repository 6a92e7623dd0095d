// Package utmupsutil contains the command-line interface for converting
// between geodetic and UTM/UPS coordinates.
package utmupsutil

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is the version of the utmups command.
const Version = "1.0.0"

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "ellipsoid",
			usage: `
              ellipsoid names the ellipsoid of the geodetic coordinates,
              for example WGS84, GRS80 or AIRY.`,
			shorthand:  "e",
			defaultVal: "WGS84",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "reverse",
			usage: `
              reverse converts "ZONE easting northing" records to
              "lat lon gamma k" instead of "lat lon" records to
              "ZONE easting northing gamma k".`,
			shorthand:  "r",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "zone",
			usage: `
              zone overrides the zone used by the forward conversion:
              "standard" (the default) picks the standard UTM or UPS zone,
              "utm" forces the standard UTM zone, "ups" or 0 forces UPS, and
              1 through 60 select a UTM zone.`,
			shorthand:  "z",
			defaultVal: "standard",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "mgrs-limits",
			usage: `
              mgrs-limits restricts eastings and northings to the MGRS
              ranges instead of allowing one extra 100 km tile.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "input-string",
			usage: `
              input-string gives the input records, separated by ';',
              instead of reading them from a file.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "input-file",
			usage: `
              input-file is the file to read records from. The default,
              "-", reads standard input.`,
			defaultVal: "-",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "output-file",
			usage: `
              output-file is the file to write results to. The default,
              "-", writes standard output.`,
			defaultVal: "-",
			flagsets:   []*pflag.FlagSet{Root.Flags()},
		},
		{
			name: "verbose",
			usage: `
              verbose logs every record that cannot be converted.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("UTMUPS")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	Root.AddCommand(versionCmd)
}

// setConfig finds and reads in the configuration file, if there is one, and
// sets the logging level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return errors.Wrap(err, "utmups: problem reading configuration file")
		}
	}
	if Cfg.GetBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "utmups",
	Short: "Convert between geodetic and UTM/UPS coordinates.",
	Long: `utmups converts geodetic coordinates (latitude and longitude in degrees, on
the WGS84 ellipsoid unless --ellipsoid says otherwise) to UTM or UPS
coordinates, or back with --reverse.

Each input line is one record. Forward records are "lat lon" and produce
"ZONE easting northing gamma k"; reverse records are "ZONE easting northing"
and produce "lat lon gamma k", where gamma is the meridian convergence in
degrees and k the scale factor. A record that cannot be converted produces a
line starting with "ERROR: " and makes the command exit with an error once all
records are processed.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'UTMUPS_var' where 'var' is
the name of the variable to be set.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := NewConverter(Cfg.GetString("ellipsoid"))
		if err != nil {
			return err
		}
		zone, err := ParseZone(Cfg.GetString("zone"))
		if err != nil {
			return err
		}
		in, closeIn, err := openInput(Cfg.GetString("input-string"), Cfg.GetString("input-file"), cmd.InOrStdin())
		if err != nil {
			return err
		}
		defer closeIn()
		out, closeOut, err := openOutput(Cfg.GetString("output-file"), cmd.OutOrStdout())
		if err != nil {
			return err
		}

		failures, err := Convert(c, in, out, Options{
			Reverse:    Cfg.GetBool("reverse"),
			SetZone:    zone,
			MGRSLimits: Cfg.GetBool("mgrs-limits"),
		})
		if cerr := closeOut(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "utmups: closing output")
		}
		if err != nil {
			return err
		}
		if failures > 0 {
			return errors.Errorf("utmups: %d records could not be converted", failures)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of utmups.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("utmups v%s\n", Version)
	},
	DisableAutoGenTag: true,
}

func nopClose() error { return nil }

// openInput returns the reader for the input records.  Records in
// inputString are separated by ';'.
func openInput(inputString, inputFile string, stdin io.Reader) (io.Reader, func() error, error) {
	if inputString != "" {
		if inputFile != "" && inputFile != "-" {
			return nil, nil, errors.New("utmups: cannot specify both --input-string and --input-file")
		}
		return strings.NewReader(strings.Replace(inputString, ";", "\n", -1)), nopClose, nil
	}
	if inputFile == "" || inputFile == "-" {
		return stdin, nopClose, nil
	}
	f, err := os.Open(inputFile)
	if err != nil {
		return nil, nil, errors.Wrap(err, "utmups: opening input file")
	}
	return f, f.Close, nil
}

// openOutput returns the writer for the results.
func openOutput(outputFile string, stdout io.Writer) (io.Writer, func() error, error) {
	if outputFile == "" || outputFile == "-" {
		return stdout, nopClose, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, errors.Wrap(err, "utmups: creating output file")
	}
	return f, f.Close, nil
}
