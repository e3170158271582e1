package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fiorix/wscontract/config"
	"github.com/fiorix/wscontract/contract"
	"github.com/fiorix/wscontract/decl"
	"github.com/fiorix/wscontract/model"
	"github.com/fiorix/wscontract/source"
	"github.com/fiorix/wscontract/wsdlgen"
	"github.com/fiorix/wscontract/xmltype"
)

var opts struct {
	Src       string
	Dst       string
	Interface string
	Location  string
}

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate the WSDL document of an endpoint interface",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := load(opts.Src)
		if err != nil {
			return err
		}
		eps, err := endpoints(ds, opts.Interface)
		if err != nil {
			return err
		}
		if len(eps) > 1 {
			var names []string
			for _, ei := range eps {
				names = append(names, ei.Decl().QualifiedName())
			}
			return fmt.Errorf("%d endpoint interfaces, pick one with --interface: %s",
				len(eps), strings.Join(names, ", "))
		}
		w, done, err := create(opts.Dst)
		if err != nil {
			return err
		}
		enc := wsdlgen.NewEncoder(w, resolver(ds))
		if opts.Location != "" {
			enc.SetLocation(opts.Location)
		}
		if err = enc.Encode(eps[0]); err != nil {
			done()
			return err
		}
		return done()
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Describe the messages of endpoint interfaces as YAML or JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := load(opts.Src)
		if err != nil {
			return err
		}
		eps, err := endpoints(ds, opts.Interface)
		if err != nil {
			return err
		}
		r := resolver(ds)
		conv := settings.Converter()
		var views []*model.Endpoint
		for _, ei := range eps {
			e, err := model.Build(ei, r, conv)
			if err != nil {
				return err
			}
			views = append(views, e)
		}
		w, done, err := create(opts.Dst)
		if err != nil {
			return err
		}
		if err = model.Write(w, settings.Format, views); err != nil {
			done()
			return err
		}
		return done()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and exit",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "wscontract %s\n", version)
	},
}

func init() {
	for _, cmd := range []*cobra.Command{genCmd, describeCmd} {
		cmd.Flags().StringVarP(&opts.Src, "input", "i", "", "declaration file, or '-' for stdin")
		cmd.Flags().StringVarP(&opts.Dst, "output", "o", "", "output file, or '-' for stdout")
		cmd.Flags().StringVar(&opts.Interface, "interface", "", "endpoint interface, by simple or qualified name")
	}
	genCmd.Flags().StringVar(&opts.Location, "location", "", "address of the service port")
	describeCmd.Flags().String(config.KeyFormat, config.FormatYAML, "output format: yaml or json")
	cobra.CheckErr(viper.BindPFlag(config.KeyFormat, describeCmd.Flags().Lookup(config.KeyFormat)))
}

func load(src string) (*source.Declarations, error) {
	if src == "" || src == "-" {
		return source.Load(os.Stdin, "<stdin>")
	}
	return source.LoadFile(src)
}

func resolver(ds *source.Declarations) *contract.Resolver {
	return contract.NewResolver(ds.Registry, xmltype.New())
}

// endpoints returns the endpoint interfaces of ds, or the one named name.
func endpoints(ds *source.Declarations, name string) ([]*contract.EndpointInterface, error) {
	var decls []*decl.TypeDecl
	for _, d := range ds.Endpoints() {
		if name == "" || name == d.Name || name == d.QualifiedName() {
			decls = append(decls, d)
		}
	}
	if len(decls) == 0 {
		if name != "" {
			return nil, fmt.Errorf("no endpoint interface %q", name)
		}
		return nil, fmt.Errorf("no endpoint interfaces declared")
	}
	var eps []*contract.EndpointInterface
	for _, d := range decls {
		ei, err := contract.NewEndpointInterface(d)
		if err != nil {
			return nil, err
		}
		log.Debug().
			Str("interface", d.QualifiedName()).
			Int("operations", len(ei.WebMethods())).
			Msg("resolved endpoint interface")
		eps = append(eps, ei)
	}
	return eps, nil
}

// create opens dst for writing. The returned func closes it.
func create(dst string) (io.Writer, func() error, error) {
	switch dst {
	case "", "-":
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
